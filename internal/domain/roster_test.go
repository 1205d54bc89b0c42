package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestRoster_AddName(t *testing.T) {
	r := NewRoster(nil)

	if err := r.AddName("  Ana "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.AddName("Beto"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.AddName("ana"); !errors.Is(err, ErrDuplicatePlayerName) {
		t.Fatalf("want ErrDuplicatePlayerName, got %v", err)
	}
	if err := r.AddName("   "); !errors.Is(err, ErrEmptyPlayerName) {
		t.Fatalf("want ErrEmptyPlayerName, got %v", err)
	}

	if got := r.Names(); !reflect.DeepEqual(got, []string{"Ana", "Beto"}) {
		t.Fatalf("roster = %v", got)
	}
}

func TestRoster_RemoveAt(t *testing.T) {
	r := NewRoster([]string{"Ana", "Beto", "Caro"})

	if err := r.RemoveAt(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"Beto", "Caro"}) {
		t.Fatalf("roster = %v", got)
	}

	for _, idx := range []int{-1, 2} {
		if err := r.RemoveAt(idx); !errors.Is(err, ErrPlayerNotFound) {
			t.Errorf("RemoveAt(%d): want ErrPlayerNotFound, got %v", idx, err)
		}
	}
}

func TestNewRoster_DropsInvalidEntries(t *testing.T) {
	r := NewRoster([]string{"Ana", "", "ANA", "Beto"})
	if got := r.Names(); !reflect.DeepEqual(got, []string{"Ana", "Beto"}) {
		t.Fatalf("roster = %v", got)
	}
}
