package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// 2026-09-07 is a Monday; openWeek gives every day 09:00-12:00 hourly.
const testMonday = "2026-09-07"

func TestGetSlots(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)

	seedSchedule(db, openWeek())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/reservations/slots?date="+testMonday, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["day_id"] != "1" {
		t.Errorf("expected day_id 1, got %v", resp["day_id"])
	}
	slots := resp["slots"].([]interface{})
	want := []string{"09:00", "10:00", "11:00", "12:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i, s := range want {
		if slots[i] != s {
			t.Errorf("slot %d: expected %s, got %v", i, s, slots[i])
		}
	}
}

func TestGetSlotsClosedDay(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)

	week := openWeek()
	week[0].Enabled = false
	seedSchedule(db, week)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/reservations/slots?date="+testMonday, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	slots := resp["slots"].([]interface{})
	if len(slots) != 0 {
		t.Errorf("expected no slots on a closed day, got %v", slots)
	}
}

func TestGetSlotsInvalidDate(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)

	seedSchedule(db, openWeek())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/reservations/slots?date=07-09-2026", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetSlotsNoSchedule(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/reservations/slots?date="+testMonday, nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateInquiry(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	t.Setenv("WHATSAPP_PHONE", "+44 7700 900123")

	seedSchedule(db, openWeek())

	body := map[string]interface{}{
		"name":       "Alex",
		"date":       testMonday,
		"time":       "10:00",
		"party_size": 4,
		"notes":      "Window table please",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/reservations/inquiry", body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	url := resp["url"].(string)
	if !strings.HasPrefix(url, "https://wa.me/447700900123?text=") {
		t.Errorf("unexpected WhatsApp link: %s", url)
	}
	message := resp["message"].(string)
	if !strings.Contains(message, "Alex") || !strings.Contains(message, "10:00") {
		t.Errorf("message should contain name and time: %s", message)
	}
	if !strings.Contains(message, "Window table please") {
		t.Errorf("message should contain notes: %s", message)
	}
}

func TestCreateInquiryUnavailableTime(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	t.Setenv("WHATSAPP_PHONE", "+44 7700 900123")

	seedSchedule(db, openWeek())

	body := map[string]interface{}{
		"name":       "Alex",
		"date":       testMonday,
		"time":       "15:00",
		"party_size": 2,
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/reservations/inquiry", body))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["error"] != "Selected time is not available on that date" {
		t.Errorf("unexpected error: %v", resp["error"])
	}
}

func TestCreateInquiryZeroPartySize(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)

	seedSchedule(db, openWeek())

	body := map[string]interface{}{
		"name":       "Alex",
		"date":       testMonday,
		"time":       "10:00",
		"party_size": 0,
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/reservations/inquiry", body))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateInquiryPhoneNotConfigured(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	t.Setenv("WHATSAPP_PHONE", "")

	seedSchedule(db, openWeek())

	body := map[string]interface{}{
		"name":       "Alex",
		"date":       testMonday,
		"time":       "10:00",
		"party_size": 2,
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/reservations/inquiry", body))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d: %s", w.Code, w.Body.String())
	}
}
