// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"contentforge/internal/models"
)

func TestBrandStoreCreate(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	s := NewBrandStore(db)

	brand, err := s.Create(&models.Brand{
		UserID:        user.ID,
		BrandName:     "Acme",
		Description:   "A test brand",
		CompanyVibe:   "Bold",
		SellingPoints: "Fast. Reliable. Cheap.",
		Emotion:       "Energetic",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if brand.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if brand.UserID != user.ID {
		t.Errorf("user_id: got %s, want %s", brand.UserID, user.ID)
	}
	if brand.BrandName != "Acme" {
		t.Errorf("brand_name: got %q, want %q", brand.BrandName, "Acme")
	}
	if brand.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestBrandStoreFindForOwner(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db)
	other := testUser(t, db)
	s := NewBrandStore(db)

	brand := testBrandFor(t, db, owner.ID)

	// Owner sees the brand.
	found, err := s.FindForOwner(brand.ID, owner.ID)
	if err != nil {
		t.Fatalf("FindForOwner: %v", err)
	}
	if found == nil {
		t.Fatal("expected brand for owner, got nil")
	}
	if found.ID != brand.ID {
		t.Errorf("ID mismatch: got %s, want %s", found.ID, brand.ID)
	}

	// Another user sees nothing.
	found, err = s.FindForOwner(brand.ID, other.ID)
	if err != nil {
		t.Fatalf("FindForOwner (other user): %v", err)
	}
	if found != nil {
		t.Error("expected nil for brand owned by someone else")
	}

	// Random id sees nothing.
	found, err = s.FindForOwner(uuid.New(), owner.ID)
	if err != nil {
		t.Fatalf("FindForOwner (random id): %v", err)
	}
	if found != nil {
		t.Error("expected nil for unknown brand id")
	}
}

func TestBrandStoreListByOwnerNewestFirst(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	s := NewBrandStore(db)

	first := testBrandFor(t, db, user.ID)
	second, err := s.Create(&models.Brand{
		UserID:        user.ID,
		BrandName:     "Newer Brand",
		Description:   "d",
		CompanyVibe:   "Modern",
		SellingPoints: "Sleek.",
	})
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	brands, err := s.ListByOwner(user.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(brands) != 2 {
		t.Fatalf("expected 2 brands, got %d", len(brands))
	}
	if brands[0].ID != second.ID || brands[1].ID != first.ID {
		t.Errorf("expected newest first, got [%s, %s]", brands[0].BrandName, brands[1].BrandName)
	}
}

func TestBrandStoreListByOwnerEmpty(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	s := NewBrandStore(db)

	brands, err := s.ListByOwner(user.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(brands) != 0 {
		t.Errorf("expected no brands for fresh user, got %d", len(brands))
	}
}

func TestBrandStoreUpdate(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db)
	other := testUser(t, db)
	s := NewBrandStore(db)

	brand := testBrandFor(t, db, owner.ID)

	brand.BrandName = "Acme Updated"
	brand.CompanyVibe = "Playful"
	updated, err := s.Update(brand, owner.ID)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated brand, got nil")
	}
	if updated.BrandName != "Acme Updated" {
		t.Errorf("brand_name: got %q, want %q", updated.BrandName, "Acme Updated")
	}
	if updated.CompanyVibe != "Playful" {
		t.Errorf("company_vibe: got %q, want %q", updated.CompanyVibe, "Playful")
	}

	// Another user cannot update; the row is unchanged.
	brand.BrandName = "Hijacked"
	res, err := s.Update(brand, other.ID)
	if err != nil {
		t.Fatalf("Update (other user): %v", err)
	}
	if res != nil {
		t.Error("expected nil updating a brand owned by someone else")
	}

	check, _ := s.FindForOwner(brand.ID, owner.ID)
	if check.BrandName != "Acme Updated" {
		t.Errorf("brand mutated by non-owner: %q", check.BrandName)
	}
}

func TestBrandStoreDelete(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db)
	other := testUser(t, db)
	s := NewBrandStore(db)

	brand := testBrandFor(t, db, owner.ID)

	// Another user cannot delete.
	deleted, err := s.Delete(brand.ID, other.ID)
	if err != nil {
		t.Fatalf("Delete (other user): %v", err)
	}
	if deleted {
		t.Error("non-owner delete reported success")
	}

	// Owner deletes.
	deleted, err = s.Delete(brand.ID, owner.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report success")
	}

	// Second delete finds nothing.
	deleted, err = s.Delete(brand.ID, owner.ID)
	if err != nil {
		t.Fatalf("Delete (repeat): %v", err)
	}
	if deleted {
		t.Error("repeat delete reported success")
	}
}

func TestBrandStoreDeleteCascadesContent(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db)
	brands := NewBrandStore(db)
	contents := NewContentStore(db)

	brand := testBrandFor(t, db, owner.ID)
	rec, err := contents.Create(brand.ID, models.ContentTypeAdCopy, "p", "text")
	if err != nil {
		t.Fatalf("create content: %v", err)
	}

	if _, err := brands.Delete(brand.ID, owner.ID); err != nil {
		t.Fatalf("delete brand: %v", err)
	}

	found, err := contents.FindByID(rec.ID)
	if err != nil {
		t.Fatalf("FindByID after cascade: %v", err)
	}
	if found != nil {
		t.Error("expected generated content to cascade with its brand")
	}
}
