package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"options-analyzer/services"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewOptionAnalysisController(services.NewOptionAnalysisService())
	controller.RegisterRoutes(router.Group("/api/v1"))

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHandlePriceOption returns the quote for a valid request.
func TestHandlePriceOption(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/options/price",
		`{"spot":100,"strike":100,"time_to_expiry":1,"volatility":0.2,"risk_free_rate":0.05,"option_type":"call"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var quote struct {
		OptionType string  `json:"option_type"`
		Premium    float64 `json:"premium"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if quote.OptionType != "call" {
		t.Errorf("expected call quote, got %q", quote.OptionType)
	}
	if quote.Premium < 10.44 || quote.Premium > 10.46 {
		t.Errorf("premium out of expected range: %v", quote.Premium)
	}
}

// TestHandlePriceOption_InvalidParameters maps engine validation
// failures to 400.
func TestHandlePriceOption_InvalidParameters(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/options/price",
		`{"spot":-1,"strike":100,"time_to_expiry":1,"volatility":0.2,"option_type":"call"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

// TestHandlePriceOption_UnknownType rejects tags other than call/put.
func TestHandlePriceOption_UnknownType(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/options/price",
		`{"spot":100,"strike":100,"time_to_expiry":1,"volatility":0.2,"option_type":"strangle"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

// TestHandleScenarios_BadSweep maps sweep validation to 400.
func TestHandleScenarios_BadSweep(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/options/scenarios",
		`{"spot":100,"strike":100,"time_to_expiry":1,"volatility":0.2,"option_type":"put","sweep":{"min_price":120,"max_price":80,"count":25}}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

// TestHandleScenarios returns the table and summary for one leg.
func TestHandleScenarios(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/options/scenarios",
		`{"spot":100,"strike":100,"time_to_expiry":1,"volatility":0.2,"risk_free_rate":0.05,"option_type":"put","sweep":{"min_price":80,"max_price":120,"count":9}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var analysis struct {
		Scenarios []struct {
			ScenarioPrice float64 `json:"scenario_price"`
		} `json:"scenarios"`
		Summary struct {
			BreakEven float64 `json:"break_even"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(analysis.Scenarios) != 9 {
		t.Errorf("expected 9 scenarios, got %d", len(analysis.Scenarios))
	}
	if analysis.Summary.BreakEven >= 100 {
		t.Errorf("put break-even should sit below the strike, got %v", analysis.Summary.BreakEven)
	}
}

// TestHandleAnalyze returns both legs from one parameter set.
func TestHandleAnalyze(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/options/analyze",
		`{"spot":100,"strike":100,"time_to_expiry":1,"volatility":0.2,"risk_free_rate":0.05}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var dual struct {
		Call *json.RawMessage `json:"call"`
		Put  *json.RawMessage `json:"put"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &dual); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dual.Call == nil || dual.Put == nil {
		t.Fatal("expected both call and put legs in the response")
	}
}
