//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseURL = "http://localhost:8080/api/v1"
)

func postJSON(t *testing.T, client *http.Client, url, token string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func patchJSON(t *testing.T, client *http.Client, url, token string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// TestShiftSettlementFlow walks the whole lifecycle: registration and
// approval, shift creation, validation and payslip generation. It assumes the
// API server and database are running, e.g. via docker-compose.
func TestShiftSettlementFlow(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}

	var adminToken, nurseToken string
	var nurseID, institutionID, shiftID string

	t.Run("Register Admin", func(t *testing.T) {
		resp := postJSON(t, client, baseURL+"/auth/register", "", map[string]string{
			"email":      "admin@example.com",
			"password":   "password123",
			"first_name": "Alice",
			"last_name":  "Martin",
			"role":       "admin",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Register Nurse", func(t *testing.T) {
		resp := postJSON(t, client, baseURL+"/auth/register", "", map[string]string{
			"email":      "marie@example.com",
			"password":   "password123",
			"first_name": "Marie",
			"last_name":  "Durand",
			"role":       "nurse",
		})
		result := decodeBody(t, resp)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		nurseID = result["id"].(string)
	})

	t.Run("Admin Login", func(t *testing.T) {
		resp := postJSON(t, client, baseURL+"/auth/login", "", map[string]string{
			"email":    "admin@example.com",
			"password": "password123",
		})
		result := decodeBody(t, resp)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		adminToken = result["access_token"].(string)
	})

	t.Run("Nurse Login Blocked While Pending", func(t *testing.T) {
		resp := postJSON(t, client, baseURL+"/auth/login", "", map[string]string{
			"email":    "marie@example.com",
			"password": "password123",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Admin Approves Nurse", func(t *testing.T) {
		resp := patchJSON(t, client, fmt.Sprintf("%s/users/%s/status", baseURL, nurseID), adminToken, map[string]string{
			"status": "APPROVED",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Nurse Login After Approval", func(t *testing.T) {
		resp := postJSON(t, client, baseURL+"/auth/login", "", map[string]string{
			"email":    "marie@example.com",
			"password": "password123",
		})
		result := decodeBody(t, resp)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		nurseToken = result["access_token"].(string)
	})

	t.Run("Admin Creates Institution", func(t *testing.T) {
		resp := postJSON(t, client, baseURL+"/institutions", adminToken, map[string]string{
			"name":    "Clinique Saint-Jean",
			"address": "12 rue des Lilas",
		})
		result := decodeBody(t, resp)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		institutionID = result["id"].(string)
	})

	t.Run("Nurse Creates Shift", func(t *testing.T) {
		resp := postJSON(t, client, baseURL+"/shifts", nurseToken, map[string]interface{}{
			"user_id":        nurseID,
			"institution_id": institutionID,
			"date":           "2025-03-12T00:00:00Z",
			"hours":          "8",
			"hourly_rate":    "25",
			"travel_cost":    "10",
		})
		result := decodeBody(t, resp)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		shiftID = result["id"].(string)
		assert.Equal(t, "PENDING", result["status"])
		assert.Equal(t, "210", result["total"])
	})

	t.Run("Nurse Cannot Validate", func(t *testing.T) {
		resp := patchJSON(t, client, fmt.Sprintf("%s/shifts/%s/status", baseURL, shiftID), nurseToken, map[string]string{
			"status": "VALIDATED",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Admin Validates Shift", func(t *testing.T) {
		resp := patchJSON(t, client, fmt.Sprintf("%s/shifts/%s/status", baseURL, shiftID), adminToken, map[string]string{
			"status": "VALIDATED",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Generate Payslip", func(t *testing.T) {
		resp := postJSON(t, client, baseURL+"/payslips/generate", nurseToken, map[string]string{
			"user_id": nurseID,
			"period":  "2025-03",
		})
		result := decodeBody(t, resp)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "210", result["gross_total"])
		assert.Equal(t, "14.7", result["commission"])
		assert.Equal(t, "195.3", result["net_total"])
	})

	t.Run("Second Generation Conflicts", func(t *testing.T) {
		resp := postJSON(t, client, baseURL+"/payslips/generate", nurseToken, map[string]string{
			"user_id": nurseID,
			"period":  "2025-03",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}
