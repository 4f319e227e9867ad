package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/messmate/backend/internal/service"
	"github.com/messmate/backend/internal/storage/sqlite"
)

// setupTestRouter builds the full API over a temp SQLite database.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tempDir, err := os.MkdirTemp("", "messmate-handler-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	h := New(service.NewLedgerService(store), service.NewRosterService(store))
	router := gin.New()
	h.Register(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func TestFullSettlementFlow(t *testing.T) {
	router := setupTestRouter(t)

	// Start a period.
	w := doJSON(t, router, http.MethodPost, "/api/v1/periods", gin.H{"name": "August 2026"})
	if w.Code != http.StatusCreated {
		t.Fatalf("StartPeriod status = %d, body = %s", w.Code, w.Body.String())
	}
	var period struct {
		ID string `json:"id"`
	}
	decode(t, w, &period)

	// Add two members.
	addMember := func(name string) string {
		t.Helper()
		w := doJSON(t, router, http.MethodPost, "/api/v1/members", gin.H{"display_name": name})
		if w.Code != http.StatusCreated {
			t.Fatalf("AddMember status = %d, body = %s", w.Code, w.Body.String())
		}
		var m struct {
			ID string `json:"id"`
		}
		decode(t, w, &m)
		return m.ID
	}
	aliceID := addMember("Alice")
	bobID := addMember("Bob")

	// Log meals: Alice 20, Bob 10.
	logMeals := func(memberID string, lunch, dinner float64) {
		t.Helper()
		w := doJSON(t, router, http.MethodPost, "/api/v1/periods/"+period.ID+"/meals", gin.H{
			"member_id":       memberID,
			"date":            "2026-08-01",
			"breakfast_units": 0,
			"lunch_units":     lunch,
			"dinner_units":    dinner,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("LogMeals status = %d, body = %s", w.Code, w.Body.String())
		}
	}
	logMeals(aliceID, 10, 10)
	logMeals(bobID, 5, 5)

	// Deposits and groceries.
	w = doJSON(t, router, http.MethodPost, "/api/v1/periods/"+period.ID+"/deposits", gin.H{
		"member_id": aliceID, "amount": 500, "date": "2026-08-02",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("AddDeposit status = %d, body = %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodPost, "/api/v1/periods/"+period.ID+"/deposits", gin.H{
		"member_id": bobID, "amount": 300, "date": "2026-08-02",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("AddDeposit status = %d, body = %s", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodPost, "/api/v1/periods/"+period.ID+"/meal-costs", gin.H{
		"member_id": aliceID, "amount": 300, "date": "2026-08-03", "note": "groceries",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("AddMealCost status = %d, body = %s", w.Code, w.Body.String())
	}

	// Summary: rate 10, mess balance 500.
	w = doJSON(t, router, http.MethodGet, "/api/v1/periods/"+period.ID+"/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("PeriodSummary status = %d, body = %s", w.Code, w.Body.String())
	}
	var summary struct {
		MealRate    float64 `json:"meal_rate"`
		MessBalance float64 `json:"mess_balance"`
	}
	decode(t, w, &summary)
	if math.Abs(summary.MealRate-10) > 1e-6 {
		t.Errorf("meal_rate = %v, want 10", summary.MealRate)
	}
	if math.Abs(summary.MessBalance-500) > 1e-6 {
		t.Errorf("mess_balance = %v, want 500", summary.MessBalance)
	}

	// Balances: Alice 300, Bob 200.
	w = doJSON(t, router, http.MethodGet, "/api/v1/periods/"+period.ID+"/balances", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("MemberBalances status = %d, body = %s", w.Code, w.Body.String())
	}
	var result struct {
		Balances []struct {
			MemberID string  `json:"member_id"`
			Balance  float64 `json:"balance"`
		} `json:"balances"`
	}
	decode(t, w, &result)
	if len(result.Balances) != 2 {
		t.Fatalf("got %d balances, want 2", len(result.Balances))
	}
	want := map[string]float64{aliceID: 300, bobID: 200}
	for _, b := range result.Balances {
		if math.Abs(b.Balance-want[b.MemberID]) > 1e-6 {
			t.Errorf("balance for %s = %v, want %v", b.MemberID, b.Balance, want[b.MemberID])
		}
	}
}

func TestValidationRejectsBadRecords(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/periods", gin.H{})
	if w.Code != http.StatusCreated {
		t.Fatalf("StartPeriod status = %d", w.Code)
	}
	var period struct {
		ID string `json:"id"`
	}
	decode(t, w, &period)

	w = doJSON(t, router, http.MethodPost, "/api/v1/members", gin.H{"display_name": "Alice"})
	var member struct {
		ID string `json:"id"`
	}
	decode(t, w, &member)

	tests := []struct {
		name string
		path string
		body gin.H
	}{
		{
			name: "negative meal units",
			path: "/api/v1/periods/" + period.ID + "/meals",
			body: gin.H{"member_id": member.ID, "date": "2026-08-01", "breakfast_units": -1, "lunch_units": 0, "dinner_units": 0},
		},
		{
			name: "malformed date",
			path: "/api/v1/periods/" + period.ID + "/meals",
			body: gin.H{"member_id": member.ID, "date": "08/01/2026", "breakfast_units": 1, "lunch_units": 0, "dinner_units": 0},
		},
		{
			name: "zero deposit",
			path: "/api/v1/periods/" + period.ID + "/deposits",
			body: gin.H{"member_id": member.ID, "amount": 0, "date": "2026-08-01"},
		},
		{
			name: "negative deposit",
			path: "/api/v1/periods/" + period.ID + "/deposits",
			body: gin.H{"member_id": member.ID, "amount": -5, "date": "2026-08-01"},
		},
		{
			name: "non-uuid member id",
			path: "/api/v1/periods/" + period.ID + "/other-costs",
			body: gin.H{"member_id": "bob", "amount": 50, "date": "2026-08-01"},
		},
		{
			name: "missing amount",
			path: "/api/v1/periods/" + period.ID + "/meal-costs",
			body: gin.H{"member_id": member.ID, "date": "2026-08-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body = %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUnknownPeriodReturns404(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{
		"/api/v1/periods/00000000-0000-0000-0000-000000000000/summary",
		"/api/v1/periods/00000000-0000-0000-0000-000000000000/balances",
		"/api/v1/periods/00000000-0000-0000-0000-000000000000/deposits",
	} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, w.Code)
		}
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/periods/active", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("active period with none open: status = %d, want 404", w.Code)
	}
}
