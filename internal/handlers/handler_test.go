// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable;
// Valkey is replaced by in-process miniredis.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"contentforge/internal/ai"
	"contentforge/internal/cache"
	"contentforge/internal/database"
	"contentforge/internal/middleware"
	"contentforge/internal/models"
	"contentforge/internal/session"
	"contentforge/internal/store"
)

// mockAIProvider implements ai.Provider for handler tests.
type mockAIProvider struct {
	name     string
	response string
	err      error
}

func (m *mockAIProvider) Name() string { return m.name }
func (m *mockAIProvider) Generate(_ context.Context, _, _ string) (string, error) {
	return m.response, m.err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "contentforge")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "contentforge")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client backed by in-process miniredis.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB           *sql.DB
	Valkey       *redis.Client
	Sessions     *session.Store
	UserStore    *store.UserStore
	BrandStore   *store.BrandStore
	VibeStore    *store.VibeStore
	ContentStore *store.ContentStore
	VibeCache    *cache.VibeCache
	Auth         *Auth
	Brands       *Brands
	Content      *Content
	Vibes        *Vibes
}

// newTestEnv creates a complete test environment with all handler
// dependencies. The AI registry is left nil; provider-backed generation is
// covered separately with a mock registry.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk, false)
	userStore := store.NewUserStore(db)
	brandStore := store.NewBrandStore(db)
	vibeStore := store.NewVibeStore(db)
	contentStore := store.NewContentStore(db)
	vibeCache := cache.NewVibeCache(vk, 1*time.Minute)

	return &testEnv{
		DB:           db,
		Valkey:       vk,
		Sessions:     sessions,
		UserStore:    userStore,
		BrandStore:   brandStore,
		VibeStore:    vibeStore,
		ContentStore: contentStore,
		VibeCache:    vibeCache,
		Auth:         NewAuth(sessions, userStore),
		Brands:       NewBrands(brandStore, vibeStore, vibeCache),
		Content:      NewContent(brandStore, contentStore, vibeStore, nil),
		Vibes:        NewVibes(vibeStore, vibeCache),
	}
}

// mockRegistry builds an ai.Registry whose only provider is the given mock.
func mockRegistry(m *mockAIProvider) *ai.Registry {
	reg := ai.NewRegistry(m.name, map[string]ai.ProviderConfig{})
	reg.Register(m.name, m)
	return reg
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email, role string, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
		Role:        role,
		TwoFADone:   twoFADone,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withChiURLParamAndSession adds both chi URL param and session to a request.
func withChiURLParamAndSession(r *http.Request, key, value string, sess *session.Data) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.SessionKey, sess)
	return r.WithContext(ctx)
}

// testUser creates a throwaway user with a random email. Cleanup removes
// the row, which cascades to brands and generated content.
func testUser(t *testing.T, env *testEnv) *models.User {
	t.Helper()

	email := "handler-" + uuid.NewString() + "@test.local"
	user, err := env.UserStore.Create(email, "password123", "Handler Test", models.RoleUser)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM users WHERE id = $1", user.ID)
	})
	return user
}

// testBrandFor creates a brand owned by the given user.
func testBrandFor(t *testing.T, env *testEnv, userID uuid.UUID) *models.Brand {
	t.Helper()

	brand, err := env.BrandStore.Create(&models.Brand{
		UserID:        userID,
		BrandName:     "Acme",
		Description:   "Rocket-powered gadgets",
		CompanyVibe:   "Bold",
		SellingPoints: "Fast. Reliable. Cheap.",
		Emotion:       "Energetic",
	})
	if err != nil {
		t.Fatalf("create test brand: %v", err)
	}
	return brand
}
