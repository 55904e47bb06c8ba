package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryFlow(t *testing.T) {
	r, _ := setupRouter(t)
	orderID := placeOrder(t, r, "br1")
	admin := login(t, r, "admin@sangem.com", "admin@123")
	branch := login(t, r, "branch1@sangem.com", "branch@123")

	code, resp := doRequest(t, r, http.MethodPost, "/branch/partners", branch, map[string]string{
		"name": "Suresh", "phone_number": "9123456780",
	})
	require.Equal(t, http.StatusCreated, code, resp)
	partnerID := data(resp)["id"].(string)
	assert.Equal(t, "br1", data(resp)["branch_id"])

	code, _ = doRequest(t, r, http.MethodPost, "/branch/partners", branch, map[string]string{
		"name": "Ramu", "phone_number": "12345",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp = doRequest(t, r, http.MethodPost, "/admin/partners/"+partnerID+"/login", admin, map[string]string{
		"email": "suresh@sangem.com", "password": "ride@123",
	})
	require.Equal(t, http.StatusCreated, code, resp)

	code, resp = doRequest(t, r, http.MethodPost, "/branch/orders/"+orderID+"/assign", branch, map[string]string{"partner_id": partnerID})
	require.Equal(t, http.StatusOK, code, resp)
	assert.Equal(t, "confirmed", data(resp)["effective_status"])
	assert.Equal(t, partnerID, data(resp)["delivery_agent_id"])
	assert.Equal(t, partnerID, data(resp)["rider_id"])
	assert.Equal(t, "confirmed", data(resp)["status"])

	secondOrder := placeOrder(t, r, "br1")
	code, _ = doRequest(t, r, http.MethodPost, "/branch/orders/"+secondOrder+"/assign", branch, map[string]string{"partner_id": partnerID})
	assert.Equal(t, http.StatusConflict, code)

	rider := login(t, r, "suresh@sangem.com", "ride@123")
	code, resp = doRequest(t, r, http.MethodGet, "/delivery/dashboard", rider, nil)
	require.Equal(t, http.StatusOK, code, resp)
	dash := data(resp)
	assert.Equal(t, partnerID, dash["partner"].(map[string]interface{})["id"])
	assert.Equal(t, "on_delivery", dash["partner"].(map[string]interface{})["status"])
	assert.Len(t, dash["active"], 1)

	code, resp = doRequest(t, r, http.MethodPost, "/delivery/orders/"+orderID+"/delivered", rider, nil)
	require.Equal(t, http.StatusOK, code, resp)
	assert.Equal(t, "delivered", data(resp)["effective_status"])

	code, _ = doRequest(t, r, http.MethodPost, "/delivery/orders/"+orderID+"/delivered", rider, nil)
	assert.Equal(t, http.StatusConflict, code)

	code, resp = doRequest(t, r, http.MethodGet, "/delivery/dashboard", rider, nil)
	require.Equal(t, http.StatusOK, code)
	stats := data(resp)["stats"].(map[string]interface{})
	assert.Equal(t, 0.0, stats["active"])
	assert.Equal(t, 1.0, stats["delivered"])
	assert.Equal(t, 1365.0, stats["today_earnings"])
	assert.Equal(t, "active", data(resp)["partner"].(map[string]interface{})["status"])
}

func TestDeliveryLoginWithoutPartner(t *testing.T) {
	r, db := setupRouter(t)
	require.NoError(t, db.Exec(
		"INSERT INTO profiles (id, email, password, role, branch_id, created_at, updated_at) VALUES ('rider-x', 'ghost@sangem.com', 'ride@123', 'delivery', 'br3', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
	).Error)

	rider := login(t, r, "ghost@sangem.com", "ride@123")
	code, _ := doRequest(t, r, http.MethodGet, "/delivery/dashboard", rider, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOverviewPDFExport(t *testing.T) {
	r, _ := setupRouter(t)
	placeOrder(t, r, "br1")
	admin := login(t, r, "admin@sangem.com", "admin@123")

	req := httptest.NewRequest(http.MethodGet, "/admin/overview.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "overview-")
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}
