package locations

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupLocationRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	SetupLocationRoutes(engine.Group("/"), NewController(setupLocationService(t)))
	return engine
}

func TestCreateLocation_EmptyValueRejected(t *testing.T) {
	engine := setupLocationRouter(t)

	for _, body := range []string{`{}`, `{"location":""}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/create-location", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Location is required") {
			t.Errorf("body %q: unexpected response %s", body, w.Body.String())
		}
	}
}

func TestCreateLocation_ReturnsNewLocation(t *testing.T) {
	engine := setupLocationRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-location", strings.NewReader(`{"location":"North Campus"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	for _, want := range []string{`"newLocation"`, `"location":"North Campus"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("response missing %s: %s", want, w.Body.String())
		}
	}
}

func TestGetLocationByID_UnknownIs404(t *testing.T) {
	engine := setupLocationRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-location/6f1f3f2a-1111-4222-8333-444455556666", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
