package newsletter

import (
	"context"
	"testing"
)

func TestMemoryRepositorySave(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, &Signup{Name: "Joe", Email: "joe@example.com"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, &Signup{Email: "anon@example.com"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	signups := repo.Signups()
	if len(signups) != 2 {
		t.Fatalf("stored %d signups, want 2", len(signups))
	}
	if signups[0].Email != "joe@example.com" || signups[0].Name != "Joe" {
		t.Errorf("unexpected first record: %+v", signups[0])
	}
	if signups[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not stamped")
	}

	// The returned slice is a copy; mutating it must not touch the store
	signups[0].Email = "tampered@example.com"
	if repo.Signups()[0].Email != "joe@example.com" {
		t.Error("returned slice aliases repository storage")
	}
}
