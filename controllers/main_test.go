package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/sangem-ordering/config"
	"github.com/yeremiapane/sangem-ordering/router"
	"github.com/yeremiapane/sangem-ordering/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupRouter returns a router over a fresh database seeded with the demo logins.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.AutoMigrate(db))
	require.NoError(t, config.SeedDemo(db))
	return router.SetupRouter(db, router.Options{}), db
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func data(resp map[string]interface{}) map[string]interface{} {
	d, _ := resp["data"].(map[string]interface{})
	return d
}

func dataList(resp map[string]interface{}) []interface{} {
	l, _ := resp["data"].([]interface{})
	return l
}

func login(t *testing.T, r http.Handler, email, password string) string {
	t.Helper()
	code, resp := doRequest(t, r, http.MethodPost, "/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, code, resp)
	token, _ := data(resp)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func checkoutBody(branchID string) map[string]interface{} {
	return map[string]interface{}{
		"customer_name":    "Asha Rao",
		"customer_phone":   "9876543210",
		"delivery_address": "Plot 14, Road No. 12, Banjara Hills",
		"branch_id":        branchID,
		"latitude":         17.4126,
		"longitude":        78.4482,
		"items": []map[string]interface{}{
			{"id": "1", "name": "Mutton Biryani", "quantity": 1, "price": 1000},
			{"id": "2", "name": "Gulab Jamun", "quantity": 2, "price": 200, "discount": 25},
		},
	}
}

func placeOrder(t *testing.T, r http.Handler, branchID string) string {
	t.Helper()
	code, resp := doRequest(t, r, http.MethodPost, "/orders", "", checkoutBody(branchID))
	require.Equal(t, http.StatusCreated, code, resp)
	order := data(resp)["order"].(map[string]interface{})
	return order["id"].(string)
}
