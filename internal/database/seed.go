package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// standardVibe is one built-in vibe matrix row.
type standardVibe struct {
	Name        string
	Tone        string
	Emotion     string
	Description string
}

// standardVibes are the built-in vibe matrix entries. Seeding is idempotent;
// existing rows are never overwritten.
var standardVibes = []standardVibe{
	{"Modern", "Contemporary, sleek", "Confident", "Clean, minimalist aesthetic with cutting-edge appeal"},
	{"Minimalist", "Simple, direct", "Calm", "Stripped back, focuses on essentials with clean design"},
	{"Bold", "Strong, assertive", "Energetic", "Makes a statement, stands out with confidence"},
	{"Vintage", "Nostalgic, classic", "Sentimental", "Draws on past eras with retro charm"},
	{"Playful", "Fun, lighthearted", "Joy", "Whimsical, casual, doesn't take itself too seriously"},
	{"Elegant", "Refined, polished", "Sophisticated", "Upscale, luxurious, with attention to detail"},
	{"Casual", "Relaxed, conversational", "Friendly", "Approachable, down-to-earth feel"},
	{"Technical", "Precise, detailed", "Analytical", "Data-driven, focuses on specifications and expertise"},
	{"Corporate", "Professional, formal", "Trustworthy", "Business-oriented, conveys stability and reliability"},
	{"Artistic", "Creative, expressive", "Inspired", "Emphasizes imagination and unique perspective"},
	{"Luxurious", "Premium, exclusive", "Desire", "High-end, focuses on quality and prestige"},
	{"Eco-friendly", "Natural, conscientious", "Mindful", "Sustainable, environmental focus"},
	{"Rustic", "Earthy, traditional", "Authentic", "Natural materials, handcrafted feel"},
	{"Futuristic", "Innovative, forward-looking", "Wonder", "Cutting-edge, technology-focused"},
}

// Seed populates the vibe matrix with the built-in entries and, when
// devAdmin is set, creates a default admin account for local development.
func Seed(db *sql.DB, devAdmin bool) error {
	if err := seedVibes(db); err != nil {
		return err
	}
	if devAdmin {
		if err := seedDevAdmin(db); err != nil {
			return err
		}
	}
	return nil
}

// seedVibes inserts every built-in vibe that is not already present. The
// unique index on vibe_name makes this safe to run from multiple instances
// starting at once.
func seedVibes(db *sql.DB) error {
	inserted := 0
	for _, v := range standardVibes {
		res, err := db.Exec(`
			INSERT INTO vibe_matrix (vibe_name, tone_keywords, emotion, description)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (vibe_name) DO NOTHING
		`, v.Name, v.Tone, v.Emotion, v.Description)
		if err != nil {
			return fmt.Errorf("seed vibe %s: %w", v.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if inserted > 0 {
		slog.Info("vibe matrix seeded", "inserted", inserted)
	}
	return nil
}

// seedDevAdmin creates a default admin user if no users exist yet.
func seedDevAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4)
	`, "admin@contentforge.local", string(hash), "Admin", "admin")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("seeded default admin user",
		"email", "admin@contentforge.local",
		"password", "admin",
	)
	return nil
}
