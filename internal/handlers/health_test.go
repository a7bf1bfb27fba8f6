package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	t.Run("all backends up", func(t *testing.T) {
		h := NewHealth(env.DB, env.Valkey)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		h.Check(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		body := decodeBody(t, rr)
		if body["status"] != "ok" || body["database"] != "up" || body["valkey"] != "up" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("valkey down reports degraded", func(t *testing.T) {
		mr := miniredis.RunT(t)
		deadClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer deadClient.Close()
		mr.Close()

		h := NewHealth(env.DB, deadClient)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		h.Check(rr, req)

		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("status: got %d, want 503", rr.Code)
		}
		body := decodeBody(t, rr)
		if body["status"] != "degraded" || body["valkey"] != "down" {
			t.Errorf("unexpected body: %v", body)
		}
	})
}
