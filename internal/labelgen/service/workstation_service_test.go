package service_test

import (
	"errors"
	"testing"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/service"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/testutil"
	"gorm.io/gorm"
)

func newWorkstationService(db *gorm.DB) *service.WorkstationService {
	return service.NewWorkstationService(repository.NewRepositories(db).Workstation)
}

func TestWorkstationCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newWorkstationService(db)

	station, err := svc.Create(service.WorkstationRequest{Name: "Team 1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !station.IsActive {
		t.Error("new workstation should default to active")
	}

	if _, err := svc.Create(service.WorkstationRequest{Name: "Team 1"}); !errors.Is(err, service.ErrAlreadyExists) {
		t.Errorf("duplicate name err = %v, want ErrAlreadyExists", err)
	}

	station, err = svc.Update(station.ID, service.WorkstationRequest{Name: "Team Alpha"})
	if err != nil || station.Name != "Team Alpha" {
		t.Errorf("Update: %v name %q", err, station.Name)
	}

	station, err = svc.ToggleActive(station.ID)
	if err != nil || station.IsActive {
		t.Errorf("ToggleActive: %v active %v", err, station.IsActive)
	}

	active, err := svc.List(true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active list = %d, want 0 after toggle", len(active))
	}
}

func TestWorkstationDeleteBlockedByUsers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newWorkstationService(db)

	station, err := svc.Create(service.WorkstationRequest{Name: "Team 1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hash, _ := service.HashPassword("x")
	user := testutil.SeedUser(t, db, "OP001", "Operator", entity.RoleOperator, hash)
	db.Model(user).Update("workstation_id", station.ID)

	if err := svc.Delete(station.ID); !errors.Is(err, service.ErrWorkstationInUse) {
		t.Errorf("err = %v, want ErrWorkstationInUse", err)
	}
}

func TestWorkstationDeleteDetachesOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newWorkstationService(db)

	station, err := svc.Create(service.WorkstationRequest{Name: "Team 1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	order := testutil.SeedOrder(t, db, 5000111, entity.OrderTypeRegular, 2000)
	db.Model(order).Update("team_id", station.ID)

	if err := svc.Delete(station.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var reloaded entity.ProductionOrder
	db.First(&reloaded, order.ID)
	if reloaded.TeamID != nil {
		t.Error("order team_id should be cleared when the workstation goes away")
	}
	if _, err := svc.Get(station.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Get after delete err = %v, want ErrNotFound", err)
	}
}
