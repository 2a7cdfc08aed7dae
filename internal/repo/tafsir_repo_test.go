package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/tbourn/go-quran-backend/internal/domain"
)

func TestUpsertTafsirSourceIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	s, err := UpsertTafsirSource(ctx, db, 169, "Ibn Kathir", "تفسير ابن كثير", "ar")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	again, err := UpsertTafsirSource(ctx, db, 169, "Tafsir Ibn Kathir", "تفسير ابن كثير", "ar")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if again.ID != s.ID {
		t.Fatalf("second upsert created a new row: %q vs %q", again.ID, s.ID)
	}
	if again.Name != "Tafsir Ibn Kathir" {
		t.Fatalf("name = %q, want refreshed name", again.Name)
	}

	all, err := ListTafsirSources(ctx, db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d sources, want 1", len(all))
	}
}

func TestGetTafsirSourceByExternalIDNotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := GetTafsirSourceByExternalID(context.Background(), db, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpsertTafsirEntryReplacesText(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	s, err := UpsertTafsirSource(ctx, db, 170, "Saadi", "تفسير السعدي", "ar")
	if err != nil {
		t.Fatalf("source: %v", err)
	}

	e, err := UpsertTafsirEntry(ctx, db, s.ID, 1, 1, "تفسير قديم")
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	e2, err := UpsertTafsirEntry(ctx, db, s.ID, 1, 1, "تفسير محدث")
	if err != nil {
		t.Fatalf("second entry: %v", err)
	}
	if e2.ID != e.ID {
		t.Fatalf("second upsert created a new row")
	}
	if e2.Text != "تفسير محدث" {
		t.Fatalf("text = %q, want replaced text", e2.Text)
	}

	n, err := CountTafsirEntries(ctx, db, s.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestListTafsirEntriesByChapter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	s, err := UpsertTafsirSource(ctx, db, 164, "Tabari", "تفسير الطبري", "ar")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	for _, v := range []int{3, 1, 2} {
		if _, err := UpsertTafsirEntry(ctx, db, s.ID, 114, v, "نص"); err != nil {
			t.Fatalf("entry %d: %v", v, err)
		}
	}
	if _, err := UpsertTafsirEntry(ctx, db, s.ID, 113, 1, "نص"); err != nil {
		t.Fatalf("other chapter: %v", err)
	}

	got, err := ListTafsirEntriesByChapter(ctx, db, s.ID, 114)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for i, want := range []int{1, 2, 3} {
		if got[i].VerseNumber != want {
			t.Fatalf("entry %d verse = %d, want %d", i, got[i].VerseNumber, want)
		}
	}
}

func TestTafsirEntryNotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := GetTafsirEntry(context.Background(), db, "missing", 1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTafsirEntriesCascadeWithSource(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	s, err := UpsertTafsirSource(ctx, db, 74, "Jalalayn", "تفسير الجلالين", "ar")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if _, err := UpsertTafsirEntry(ctx, db, s.ID, 1, 1, "نص"); err != nil {
		t.Fatalf("entry: %v", err)
	}

	if err := db.Unscoped().Delete(&domain.TafsirSource{}, "id = ?", s.ID).Error; err != nil {
		t.Fatalf("delete source: %v", err)
	}
	var cnt int64
	if err := db.Model(&domain.TafsirEntry{}).Where("source_id = ?", s.ID).Count(&cnt).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if cnt != 0 {
		t.Fatalf("expected entries to cascade-delete with their source, got %d", cnt)
	}
}
