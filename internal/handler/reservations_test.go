package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/pacoyass/cantina/internal/models"
	"github.com/pacoyass/cantina/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationPayload(date, slot string, partySize int) map[string]any {
	return map[string]any{
		"customer_name":  "Youssef",
		"customer_email": "youssef@example.com",
		"customer_phone": "+212611111111",
		"date":           date,
		"time":           slot,
		"party_size":     partySize,
	}
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// seedReservations inserts count reservations directly at (date, slot).
func seedReservations(t *testing.T, date, slot string, count int, status models.ReservationStatus) {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	require.NoError(t, err)
	for i := 0; i < count; i++ {
		require.NoError(t, database.DB.Create(&models.Reservation{
			CustomerName:  fmt.Sprintf("Guest %d", i),
			CustomerEmail: fmt.Sprintf("guest%d@example.com", i),
			CustomerPhone: "+212600000000",
			Date:          parsed,
			Time:          slot,
			PartySize:     2,
			Status:        status,
		}).Error)
	}
}

func TestCreateReservationValidation(t *testing.T) {
	r := setupTest(t)
	date := futureDate(3)

	t.Run("party size bounds", func(t *testing.T) {
		for size, want := range map[int]int{
			0:  http.StatusBadRequest,
			1:  http.StatusCreated,
			12: http.StatusCreated,
			13: http.StatusBadRequest,
		} {
			w := doRequest(t, r, http.MethodPost, "/api/reservations", reservationPayload(date, "12:00", size))
			require.Equalf(t, want, w.Code, "party size %d, body: %s", size, w.Body.String())
		}
	})

	t.Run("past date rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/reservations", reservationPayload(futureDate(-1), "12:00", 4))
		assertStatus(t, w, http.StatusBadRequest)
		assert.Contains(t, w.Body.String(), "must be in the future")
	})

	t.Run("today accepted", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/reservations", reservationPayload(futureDate(0), "13:00", 4))
		assertStatus(t, w, http.StatusCreated)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/reservations", reservationPayload("01/02/2030", "12:00", 4))
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown slot rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/reservations", reservationPayload(date, "16:00", 4))
		assertStatus(t, w, http.StatusBadRequest)
		assert.Contains(t, w.Body.String(), "Invalid time slot")
	})

	t.Run("missing contact fields rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/reservations", map[string]any{
			"date": date, "time": "12:00", "party_size": 4,
		})
		assertStatus(t, w, http.StatusBadRequest)
	})
}

func TestReservationSlotCapacity(t *testing.T) {
	r := setupTest(t)
	date := futureDate(7)

	seedReservations(t, date, "19:00", 6, models.ReservationStatusPending)
	seedReservations(t, date, "19:00", 4, models.ReservationStatusConfirmed)
	// Cancelled bookings never count against the slot.
	seedReservations(t, date, "19:00", 3, models.ReservationStatusCancelled)

	t.Run("full slot rejects the 11th booking", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/reservations", reservationPayload(date, "19:00", 2))
		assertStatus(t, w, http.StatusBadRequest)
		assert.Contains(t, w.Body.String(), "fully booked")
	})

	t.Run("another slot on the same date succeeds", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/reservations", reservationPayload(date, "20:00", 2))
		assertStatus(t, w, http.StatusCreated)
		body := decodeBody(t, w)
		assert.Equal(t, "PENDING", body["status"])
	})

	t.Run("availability reflects the counts", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/reservations/availability/"+date, nil)
		assertStatus(t, w, http.StatusOK)

		var slots []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
		require.Len(t, slots, len(timeSlots))

		byTime := map[string]map[string]any{}
		for _, s := range slots {
			byTime[s["time"].(string)] = s
		}
		assert.Equal(t, false, byTime["19:00"]["available"])
		assert.Equal(t, 0.0, byTime["19:00"]["remaining"])
		assert.Equal(t, true, byTime["20:00"]["available"])
		assert.Equal(t, 9.0, byTime["20:00"]["remaining"])
		assert.Equal(t, 10.0, byTime["12:00"]["remaining"])
	})
}

func TestReservationLookupAndStatus(t *testing.T) {
	r := setupTest(t)
	date := futureDate(2)

	w := doRequest(t, r, http.MethodPost, "/api/reservations", reservationPayload(date, "21:00", 5))
	assertStatus(t, w, http.StatusCreated)
	id := decodeBody(t, w)["id"].(float64)

	t.Run("fetch by id", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/reservations/%.0f", id), nil)
		assertStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		assert.Equal(t, "21:00", body["time"])
		assert.Equal(t, 5.0, body["party_size"])
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/reservations/99999", nil)
		assertStatus(t, w, http.StatusNotFound)
	})

	t.Run("status update", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/reservations/%.0f/status", id), map[string]any{"status": "CONFIRMED"})
		assertStatus(t, w, http.StatusOK)
		assert.Equal(t, "CONFIRMED", decodeBody(t, w)["status"])
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/reservations/%.0f/status", id), map[string]any{"status": "NO_SHOW"})
		assertStatus(t, w, http.StatusBadRequest)
	})
}
