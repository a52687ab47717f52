package content_test

import (
	"errors"
	"testing"

	"github.com/asghar-0017/aparntment-frontend/internal/app/content"
)

func TestLookup(t *testing.T) {
	for _, slug := range content.Slugs() {
		page, err := content.Lookup(slug)
		if err != nil {
			t.Fatalf("lookup %q: %v", slug, err)
		}
		if page.Slug != slug || page.Title == "" {
			t.Errorf("page %q incomplete: %+v", slug, page)
		}
	}
}

func TestLookup_UnknownSlug(t *testing.T) {
	if _, err := content.Lookup("pricing"); !errors.Is(err, content.ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
}

func TestFAQHasEntries(t *testing.T) {
	page, err := content.Lookup("faq")
	if err != nil {
		t.Fatalf("lookup faq: %v", err)
	}
	if len(page.FAQ) == 0 {
		t.Fatal("expected faq entries")
	}
	for i, entry := range page.FAQ {
		if entry.Question == "" || entry.Answer == "" {
			t.Errorf("faq entry %d incomplete", i)
		}
	}
}
