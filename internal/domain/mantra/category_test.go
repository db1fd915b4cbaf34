package mantra

import (
	"errors"
	"testing"
)

func TestNormalizeCategoryCaseAndWhitespace(t *testing.T) {
	for _, in := range []string{"KALI", "kali", "  Kali ", "\tkAlI\n"} {
		got, err := NormalizeCategory(in)
		if err != nil {
			t.Fatalf("NormalizeCategory(%q) returned error: %v", in, err)
		}
		if got != "KALI" {
			t.Fatalf("NormalizeCategory(%q) = %q, want KALI", in, got)
		}
	}
}

func TestNormalizeCategoryMultiWord(t *testing.T) {
	got, err := NormalizeCategory("bala tripura sundari")
	if err != nil {
		t.Fatalf("NormalizeCategory returned error: %v", err)
	}
	if got != "BALA TRIPURA SUNDARI" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeCategoryRejectsUnknown(t *testing.T) {
	_, err := NormalizeCategory("DURGA")
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestNormalizeCategoryRejectsEmpty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		_, err := NormalizeCategory(in)
		if !errors.Is(err, ErrCategoryRequired) {
			t.Fatalf("NormalizeCategory(%q): expected ErrCategoryRequired, got %v", in, err)
		}
	}
}
