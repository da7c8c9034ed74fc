package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ZulfikarHD/labelgen/internal/config"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/handler"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/service"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/testutil"
	"github.com/ZulfikarHD/labelgen/internal/shared/sirine"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type apiEnv struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Admin    *entity.User
	Operator *entity.User
}

func adminToken(env *apiEnv) string {
	return testutil.GenerateTestToken(env.Admin.ID, env.Admin.NP, env.Admin.Name, "admin")
}

func operatorToken(env *apiEnv) string {
	return testutil.GenerateTestToken(env.Operator.ID, env.Operator.NP, env.Operator.Name, "operator")
}

// setupAPI builds the full router against a test schema and a fake
// SIRINE upstream.
func setupAPI(t *testing.T, sheets map[int64]int) *apiEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var po int64
		if _, err := fmt.Sscanf(r.URL.Path, "/detail-order-pcht/%d", &po); err != nil {
			fmt.Sscanf(r.URL.Path, "/detail-order-mmea/%d", &po)
		}
		n, ok := sheets[po]
		if !ok {
			w.Write([]byte(`{"error": "Data tidak ditemukan"}`))
			return
		}
		fmt.Fprintf(w, `{"no_po": %d, "no_obc": "OBC-%d", "jenis": "PCHT", "rencet": %d}`, po, po, n)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:            testutil.JWTSecret,
			AccessTokenExpire: time.Hour,
			Issuer:            "labelgen",
		},
	}
	repos := repository.NewRepositories(db)
	spec := sirine.NewClient(srv.URL, 2*time.Second, zap.NewNop())
	services := service.NewServices(repos, nil, spec, cfg)
	handlers := handler.NewHandlers(services)

	r := testutil.SetupRouter()
	handler.RegisterRoutes(r, handlers, testutil.JWTSecret, services.Auth)

	adminHash, _ := service.HashPassword(service.DefaultPassword("ADMIN"))
	opHash, _ := service.HashPassword(service.DefaultPassword("OP001"))
	admin := testutil.SeedUser(t, db, "ADMIN", "Administrator", entity.RoleAdmin, adminHash)
	operator := testutil.SeedUser(t, db, "OP001", "Operator", entity.RoleOperator, opHash)

	return &apiEnv{DB: db, Router: r, Admin: admin, Operator: operator}
}

func TestLoginEndpoint(t *testing.T) {
	env := setupAPI(t, nil)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login", map[string]string{
		"np": "admin", "password": "PeruriADMIN",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d body %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["token"] == "" {
		t.Error("expected a token")
	}

	w = testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login", map[string]string{
		"np": "admin", "password": "wrong",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d", w.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	env := setupAPI(t, nil)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/orders", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", w.Code)
	}
}

func TestAdminGate(t *testing.T) {
	env := setupAPI(t, map[int64]int{3000100: 2000})

	body := map[string]interface{}{"po_number": 3000100}
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/orders", body, operatorToken(env))
	if w.Code != http.StatusForbidden {
		t.Errorf("operator register status = %d, want 403", w.Code)
	}

	w = testutil.DoRequest(env.Router, "POST", "/api/v1/orders", body, adminToken(env))
	if w.Code != http.StatusCreated {
		t.Errorf("admin register status = %d body %s", w.Code, w.Body.String())
	}
}

func TestOrderLabelFlow(t *testing.T) {
	env := setupAPI(t, map[int64]int{3000200: 2000})

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/orders",
		map[string]interface{}{"po_number": 3000200}, adminToken(env))
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d body %s", w.Code, w.Body.String())
	}
	order := testutil.ParseResponse(w)["data"].(map[string]interface{})
	orderID := int(order["id"].(float64))

	w = testutil.DoRequest(env.Router, "GET", fmt.Sprintf("/api/v1/orders/%d/labels", orderID), nil, operatorToken(env))
	if w.Code != http.StatusOK {
		t.Fatalf("list labels status = %d", w.Code)
	}
	labels := testutil.ParseResponse(w)["data"].([]interface{})
	if len(labels) != 4 {
		t.Fatalf("labels = %d, want 4", len(labels))
	}
	labelID := int(labels[0].(map[string]interface{})["id"].(float64))

	// Operator starts with their own NP (empty body).
	w = testutil.DoRequest(env.Router, "POST", fmt.Sprintf("/api/v1/labels/%d/start", labelID), nil, operatorToken(env))
	if w.Code != http.StatusOK {
		t.Fatalf("start status = %d body %s", w.Code, w.Body.String())
	}
	started := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if started["state"] != "in_progress" {
		t.Errorf("state = %v", started["state"])
	}
	if started["inspector_np"] != "OP001" {
		t.Errorf("inspector_np = %v, want OP001", started["inspector_np"])
	}

	w = testutil.DoRequest(env.Router, "POST", fmt.Sprintf("/api/v1/labels/%d/finish", labelID),
		map[string]interface{}{"pack_sheets": 500}, operatorToken(env))
	if w.Code != http.StatusOK {
		t.Fatalf("finish status = %d body %s", w.Code, w.Body.String())
	}

	// Finishing again is a lifecycle violation.
	w = testutil.DoRequest(env.Router, "POST", fmt.Sprintf("/api/v1/labels/%d/finish", labelID), nil, operatorToken(env))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("double finish status = %d, want 422", w.Code)
	}

	w = testutil.DoRequest(env.Router, "GET", fmt.Sprintf("/api/v1/orders/%d", orderID), nil, operatorToken(env))
	detail := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if detail["progress"].(float64) != 25 {
		t.Errorf("progress = %v, want 25", detail["progress"])
	}
}

func TestOrderListTeamFilter(t *testing.T) {
	env := setupAPI(t, map[int64]int{3000400: 1000, 3000401: 1000})
	team := testutil.SeedWorkstation(t, env.DB, "Line A")

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/orders",
		map[string]interface{}{"po_number": 3000400, "team_id": team.ID}, adminToken(env))
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d body %s", w.Code, w.Body.String())
	}
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/orders",
		map[string]interface{}{"po_number": 3000401}, adminToken(env))
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, "GET", fmt.Sprintf("/api/v1/orders?team_id=%d", team.ID), nil, operatorToken(env))
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("filtered items = %d, want 1", len(items))
	}
	if po := items[0].(map[string]interface{})["po_number"].(float64); po != 3000400 {
		t.Errorf("po_number = %v, want 3000400", po)
	}
	if data["total"].(float64) != 1 {
		t.Errorf("total = %v, want 1", data["total"])
	}
}

func TestDeactivatedAccountRejected(t *testing.T) {
	env := setupAPI(t, nil)
	token := operatorToken(env)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/orders", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("active account status = %d, want 200", w.Code)
	}

	// Deactivation kills the session on the next request even though
	// the token itself is still valid.
	if err := env.DB.Model(&entity.User{}).Where("id = ?", env.Operator.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate user: %v", err)
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/orders", nil, token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("deactivated account status = %d, want 401", w.Code)
	}
}

func TestRegisterUnknownPOEndpoint(t *testing.T) {
	env := setupAPI(t, nil)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/orders",
		map[string]interface{}{"po_number": 12345}, adminToken(env))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown PO status = %d, want 404", w.Code)
	}
}

func TestExportEndpoint(t *testing.T) {
	env := setupAPI(t, map[int64]int{3000300: 1000})

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/orders",
		map[string]interface{}{"po_number": 3000300}, adminToken(env))
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d", w.Code)
	}
	orderID := int(testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(float64))

	w = testutil.DoRequest(env.Router, "GET", fmt.Sprintf("/api/v1/orders/%d/export", orderID), nil, operatorToken(env))
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("export body should not be empty")
	}
}
