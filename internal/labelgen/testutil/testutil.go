package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	TestSchema = "test_labelgen"
	JWTSecret  = "labelgen-jwt-secret-for-tests"
)

// projectRoot walks up from this file until it finds go.mod.
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func loadEnv() {
	root := projectRoot()
	if root != "" {
		godotenv.Load(filepath.Join(root, ".env"))
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SetupTestDB opens a connection scoped to a unique schema so tests
// can run in parallel against one database. The schema is dropped on
// cleanup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loadEnv()

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "labelgen")
	password := getEnv("DB_PASSWORD", "labelgen123")
	dbname := getEnv("DB_NAME", "labelgen")

	baseDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	schemaName := fmt.Sprintf("%s_%d", TestSchema, time.Now().UnixNano()%1000000)

	setupDB, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to database for schema setup: %v", err)
	}
	setupDB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName))
	sqlSetup, _ := setupDB.DB()
	sqlSetup.Close()

	// search_path in the DSN so every pooled connection lands in the
	// test schema.
	testDSN := fmt.Sprintf("%s search_path=%s", baseDSN, schemaName)
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := entity.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		cleanDB, cleanErr := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if cleanErr == nil {
			cleanDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
			sqlClean, _ := cleanDB.DB()
			if sqlClean != nil {
				sqlClean.Close()
			}
		}
	})

	return db
}

// SetupRouter creates a bare gin router in test mode.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// GenerateTestToken signs a JWT in the shape the auth middleware
// expects.
func GenerateTestToken(userID uint, np, name, role string) string {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  np,
		"uid":  userID,
		"np":   np,
		"name": name,
		"role": role,
		"iss":  "labelgen",
		"iat":  now.Unix(),
		"exp":  now.Add(12 * time.Hour).Unix(),
		"jti":  fmt.Sprintf("test-jti-%d", now.UnixNano()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// AdminToken returns a token for a default admin test user.
func AdminToken(userID uint) string {
	return GenerateTestToken(userID, "ADMIN", "Test Admin", "admin")
}

// OperatorToken returns a token for a default operator test user.
func OperatorToken(userID uint) string {
	return GenerateTestToken(userID, "OP001", "Test Operator", "operator")
}

// DoRequest executes an HTTP request against the test router.
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse decodes the JSON response body into a map.
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedWorkstation creates a workstation row.
func SeedWorkstation(t *testing.T, db *gorm.DB, name string) *entity.Workstation {
	t.Helper()
	station := &entity.Workstation{Name: name, IsActive: true}
	if err := db.Create(station).Error; err != nil {
		t.Fatalf("Failed to seed workstation: %v", err)
	}
	return station
}

// SeedUser creates a user row with a bcrypt-hashed password.
func SeedUser(t *testing.T, db *gorm.DB, np, name string, role entity.UserRole, hash string) *entity.User {
	t.Helper()
	user := &entity.User{
		NP:       np,
		Name:     name,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

// SeedOrder creates a production order with pre-materialized labels.
func SeedOrder(t *testing.T, db *gorm.DB, po int64, orderType entity.OrderType, totalSheets int) *entity.ProductionOrder {
	t.Helper()
	totalRims := totalSheets / entity.SheetsPerRim
	inschiet := totalSheets % entity.SheetsPerRim
	order := &entity.ProductionOrder{
		PONumber:       po,
		OBCNumber:      fmt.Sprintf("OBC-%d", po),
		OrderType:      orderType,
		TotalSheets:    totalSheets,
		TotalRims:      totalRims,
		StartRim:       1,
		EndRim:         totalRims,
		InschietSheets: inschiet,
		Status:         entity.OrderStatusRegistered,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("Failed to seed order: %v", err)
	}
	return order
}
