package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gamedex/gamedex/internal/globaltime"
)

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeJSend(t *testing.T, rec *httptest.ResponseRecorder) jsendResponse {
	t.Helper()

	var resp jsendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHandleHealth(t *testing.T) {
	globaltime.SetMockTime(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	t.Cleanup(globaltime.ResetTime)

	s := &Server{logger: zerolog.Nop()}
	c, rec := newTestContext(t, "/api/v1/health")

	if err := s.handleHealth(c); err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	resp := decodeJSend(t, rec)
	if resp.Status != "success" {
		t.Fatalf("unexpected jsend status: %q", resp.Status)
	}
	if !strings.Contains(rec.Body.String(), `"gamedex"`) {
		t.Fatalf("expected service name in body: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"2024-06-01T12:00:00Z"`) {
		t.Fatalf("expected pinned timestamp in body: %s", rec.Body.String())
	}
}

func TestHandleGamesRequiresQuery(t *testing.T) {
	t.Parallel()

	s := &Server{logger: zerolog.Nop()}
	c, rec := newTestContext(t, "/api/v1/games")

	if err := s.handleGames(c); err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if resp := decodeJSend(t, rec); resp.Status != "fail" {
		t.Fatalf("unexpected jsend status: %q", resp.Status)
	}
}

func TestHandleGamePostsValidation(t *testing.T) {
	t.Parallel()

	s := &Server{logger: zerolog.Nop()}

	c, rec := newTestContext(t, "/api/v1/games/abc/posts?platform=ps4")
	c.SetParamNames("game_id")
	c.SetParamValues("abc")
	if err := s.handleGamePosts(c); err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected bad request for non-numeric game id, got %d", rec.Code)
	}

	c, rec = newTestContext(t, "/api/v1/games/1/posts?platform=psp")
	c.SetParamNames("game_id")
	c.SetParamValues("1")
	if err := s.handleGamePosts(c); err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected bad request for unknown platform, got %d", rec.Code)
	}
}

func TestNormalizePlatform(t *testing.T) {
	t.Parallel()

	if got, err := normalizePlatform(" PS4 "); err != nil || got != "ps4" {
		t.Fatalf("unexpected result: %q %v", got, err)
	}
	if got, err := normalizePlatform("ps5"); err != nil || got != "ps5" {
		t.Fatalf("unexpected result: %q %v", got, err)
	}
	if _, err := normalizePlatform(""); err == nil {
		t.Fatalf("expected missing platform to error")
	}
	if _, err := normalizePlatform("xbox"); err == nil {
		t.Fatalf("expected unknown platform to error")
	}
}

func TestParsePositiveInt(t *testing.T) {
	t.Parallel()

	if got, err := parsePositiveInt("", 25, 1, 200); err != nil || got != 25 {
		t.Fatalf("unexpected default: %d %v", got, err)
	}
	if got, err := parsePositiveInt("50", 25, 1, 200); err != nil || got != 50 {
		t.Fatalf("unexpected parsed value: %d %v", got, err)
	}
	if _, err := parsePositiveInt("0", 25, 1, 200); err == nil {
		t.Fatalf("expected below-minimum value to error")
	}
	if _, err := parsePositiveInt("abc", 25, 1, 200); err == nil {
		t.Fatalf("expected non-numeric value to error")
	}
}
