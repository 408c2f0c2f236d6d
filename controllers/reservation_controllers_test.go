package controllers_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-concierge/models"
	"github.com/yeremiapane/restaurant-concierge/testutil"
)

func TestReservationLifecycle(t *testing.T) {
	r, db := setupRouter(t)
	testutil.SeedTables(t, db, 1)

	body := map[string]interface{}{"customer_name": "Alice", "table_number": 1, "date": "2024-06-01", "time": "19:00"}

	w, env := doJSON(t, r, http.MethodPost, "/api/reservations", body)
	require.Equal(t, http.StatusCreated, w.Code)
	var res models.Reservation
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, models.ReservationConfirmed, res.Status)

	w, env = doJSON(t, r, http.MethodPost, "/api/reservations", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Conflict", env.Kind)
	assert.False(t, env.Status)

	w, env = doJSON(t, r, http.MethodGet, "/api/reservations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Reservation
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/reservations/"+strconv.Itoa(int(res.ID)), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, http.MethodDelete, "/api/reservations/"+strconv.Itoa(int(res.ID)), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NotFound", env.Kind)
}

func TestCreateReservationErrors(t *testing.T) {
	r, db := setupRouter(t)
	testutil.SeedTables(t, db, 1)

	tests := []struct {
		name     string
		body     interface{}
		wantCode int
		wantKind string
	}{
		{"unknown table", map[string]interface{}{"customer_name": "A", "table_number": 9, "date": "2024-06-01", "time": "19:00"}, http.StatusNotFound, "NotFound"},
		{"missing name", map[string]interface{}{"table_number": 1, "date": "2024-06-01", "time": "19:00"}, http.StatusBadRequest, "Validation"},
		{"bad json type", map[string]interface{}{"customer_name": "A", "table_number": "one"}, http.StatusBadRequest, "Validation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, r, http.MethodPost, "/api/reservations", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantKind, env.Kind)
		})
	}
}
