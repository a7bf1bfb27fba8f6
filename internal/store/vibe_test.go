// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestVibeStoreFindByName(t *testing.T) {
	db := testDB(t)
	s := NewVibeStore(db)

	name := "test-vibe-" + uuid.NewString()
	t.Cleanup(func() { cleanVibes(t, db, name) })

	// Not found is nil, not an error.
	v, err := s.FindByName(name)
	if err != nil {
		t.Fatalf("FindByName (not found): %v", err)
	}
	if v != nil {
		t.Error("expected nil for unknown vibe")
	}

	created, err := s.Ensure(name, "upbeat", "Joy", "a test vibe")
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	v, err = s.FindByName(name)
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if v == nil {
		t.Fatal("expected vibe, got nil")
	}
	if v.ID != created.ID {
		t.Errorf("ID mismatch: got %s, want %s", v.ID, created.ID)
	}
	if v.Emotion != "Joy" {
		t.Errorf("emotion: got %q, want %q", v.Emotion, "Joy")
	}
}

func TestVibeStoreEnsureFirstWriterWins(t *testing.T) {
	db := testDB(t)
	s := NewVibeStore(db)

	name := "test-zesty-" + uuid.NewString()
	t.Cleanup(func() { cleanVibes(t, db, name) })

	first, err := s.Ensure(name, "upbeat", "Joy", "original description")
	if err != nil {
		t.Fatalf("first Ensure: %v", err)
	}

	// Second call with different attributes returns the original row.
	second, err := s.Ensure(name, "gloomy", "Fear", "different description")
	if err != nil {
		t.Fatalf("second Ensure: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected same row, got %s and %s", first.ID, second.ID)
	}
	if second.ToneKeywords != "upbeat" || second.Emotion != "Joy" || second.Description != "original description" {
		t.Errorf("first-writer row was modified: %+v", second)
	}

	// Exactly one row exists.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM vibe_matrix WHERE vibe_name = $1", name).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 row, got %d", count)
	}
}

func TestVibeStoreList(t *testing.T) {
	db := testDB(t)
	s := NewVibeStore(db)

	nameA := "test-aaa-" + uuid.NewString()
	nameB := "test-zzz-" + uuid.NewString()
	t.Cleanup(func() { cleanVibes(t, db, nameA, nameB) })

	if _, err := s.Ensure(nameB, "t", "e", "d"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if _, err := s.Ensure(nameA, "t", "e", "d"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	vibes, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	idxA, idxB := -1, -1
	for i, v := range vibes {
		switch v.Name {
		case nameA:
			idxA = i
		case nameB:
			idxB = i
		}
	}
	if idxA == -1 || idxB == -1 {
		t.Fatal("inserted vibes missing from List")
	}
	if idxA > idxB {
		t.Errorf("expected name-ascending order, got %q after %q", nameA, nameB)
	}
}
