// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"contentforge/internal/database"
	"contentforge/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "contentforge")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "contentforge")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testUser creates a throwaway user for ownership-scoped tests and
// registers cleanup. Brands and generated content cascade on user delete.
func testUser(t *testing.T, db *sql.DB) *models.User {
	t.Helper()

	s := NewUserStore(db)
	email := "test-" + uuid.NewString() + "@store-test.local"
	user, err := s.Create(email, "testpass123", "Store Test", models.RoleUser)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM users WHERE id = $1", user.ID)
	})
	return user
}

// testBrandFor creates a brand owned by the given user.
func testBrandFor(t *testing.T, db *sql.DB, userID uuid.UUID) *models.Brand {
	t.Helper()

	s := NewBrandStore(db)
	brand, err := s.Create(&models.Brand{
		UserID:        userID,
		BrandName:     "Acme",
		Description:   "A test brand",
		CompanyVibe:   "Bold",
		SellingPoints: "Fast. Reliable. Cheap.",
		Emotion:       "Energetic",
	})
	if err != nil {
		t.Fatalf("create test brand: %v", err)
	}
	return brand
}

// cleanUsers removes test users by email pattern. Call in t.Cleanup().
func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, email := range emails {
		db.Exec("DELETE FROM users WHERE email = $1", email)
	}
}

// cleanVibes removes test vibes by name. Call in t.Cleanup().
func cleanVibes(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec("DELETE FROM vibe_matrix WHERE vibe_name = $1", name)
	}
}
