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

func seedOrderWithLabels(t *testing.T, db *gorm.DB, po int64) (*entity.ProductionOrder, []entity.Label) {
	t.Helper()
	order := testutil.SeedOrder(t, db, po, entity.OrderTypeRegular, 2000)
	left, right := entity.CutSideLeft, entity.CutSideRight
	labels := []entity.Label{
		{ProductionOrderID: order.ID, RimNumber: 1, CutSide: &left},
		{ProductionOrderID: order.ID, RimNumber: 1, CutSide: &right},
		{ProductionOrderID: order.ID, RimNumber: 2, CutSide: &left},
		{ProductionOrderID: order.ID, RimNumber: 2, CutSide: &right},
	}
	if err := db.Create(&labels).Error; err != nil {
		t.Fatalf("seed labels: %v", err)
	}
	return order, labels
}

func newLabelService(db *gorm.DB) *service.LabelService {
	repos := repository.NewRepositories(db)
	return service.NewLabelService(repos.Label, repos.Order)
}

func TestStartAndFinishLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, labels := seedOrderWithLabels(t, db, 4000111)
	svc := newLabelService(db)

	view, err := svc.Start(labels[0].ID, service.StartInspectionRequest{InspectorNP: "op001"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if view.State != entity.LabelStateInProgress {
		t.Errorf("state after start = %q", view.State)
	}
	if view.InspectorNP == nil || *view.InspectorNP != "OP001" {
		t.Errorf("InspectorNP = %v, want uppercase OP001", view.InspectorNP)
	}

	pack := 500
	view, err = svc.Finish(labels[0].ID, service.FinishInspectionRequest{
		Inspector2NP: "op002",
		PackSheets:   &pack,
	})
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if view.State != entity.LabelStateCompleted {
		t.Errorf("state after finish = %q", view.State)
	}
	if view.Inspector2NP == nil || *view.Inspector2NP != "OP002" {
		t.Errorf("Inspector2NP = %v", view.Inspector2NP)
	}
	if view.PackSheets == nil || *view.PackSheets != 500 {
		t.Errorf("PackSheets = %v", view.PackSheets)
	}
}

func TestFinishRequiresStart(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, labels := seedOrderWithLabels(t, db, 4000222)
	svc := newLabelService(db)

	_, err := svc.Finish(labels[0].ID, service.FinishInspectionRequest{})
	if !errors.Is(err, service.ErrLabelNotStarted) {
		t.Errorf("err = %v, want ErrLabelNotStarted", err)
	}
}

func TestStartTwiceRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, labels := seedOrderWithLabels(t, db, 4000333)
	svc := newLabelService(db)

	if _, err := svc.Start(labels[0].ID, service.StartInspectionRequest{InspectorNP: "OP001"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	_, err := svc.Start(labels[0].ID, service.StartInspectionRequest{InspectorNP: "OP002"})
	if !errors.Is(err, service.ErrLabelStarted) {
		t.Errorf("err = %v, want ErrLabelStarted", err)
	}
}

func TestFinishTwiceRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, labels := seedOrderWithLabels(t, db, 4000444)
	svc := newLabelService(db)

	if _, err := svc.Start(labels[0].ID, service.StartInspectionRequest{InspectorNP: "OP001"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.Finish(labels[0].ID, service.FinishInspectionRequest{}); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	_, err := svc.Finish(labels[0].ID, service.FinishInspectionRequest{})
	if !errors.Is(err, service.ErrLabelFinished) {
		t.Errorf("err = %v, want ErrLabelFinished", err)
	}
}

func TestCompletedOrderFrozen(t *testing.T) {
	db := testutil.SetupTestDB(t)
	order, labels := seedOrderWithLabels(t, db, 4000555)
	svc := newLabelService(db)

	db.Model(order).Update("status", entity.OrderStatusCompleted)

	_, err := svc.Start(labels[0].ID, service.StartInspectionRequest{InspectorNP: "OP001"})
	if !errors.Is(err, service.ErrOrderCompleted) {
		t.Errorf("err = %v, want ErrOrderCompleted", err)
	}
}

func TestStartWithoutInspector(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, labels := seedOrderWithLabels(t, db, 4000666)
	svc := newLabelService(db)

	_, err := svc.Start(labels[0].ID, service.StartInspectionRequest{})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestLabelUniquePerRimAndSide(t *testing.T) {
	db := testutil.SetupTestDB(t)
	order, _ := seedOrderWithLabels(t, db, 4000777)

	left := entity.CutSideLeft
	dup := entity.Label{ProductionOrderID: order.ID, RimNumber: 1, CutSide: &left}
	err := db.Create(&dup).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate label err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestListByOrderOrdering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	order, _ := seedOrderWithLabels(t, db, 4000888)
	left := entity.CutSideLeft
	inschiet := entity.Label{
		ProductionOrderID: order.ID,
		RimNumber:         entity.InschietRimNumber,
		CutSide:           &left,
		IsInschiet:        true,
	}
	if err := db.Create(&inschiet).Error; err != nil {
		t.Fatal(err)
	}
	svc := newLabelService(db)

	views, err := svc.ListByOrder(order.ID)
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if len(views) != 5 {
		t.Fatalf("labels = %d, want 5", len(views))
	}
	if !views[len(views)-1].IsInschiet {
		t.Error("inschiet label should sort last")
	}
	for _, v := range views {
		if v.State != entity.LabelStatePending {
			t.Errorf("fresh label state = %q", v.State)
		}
	}
}
