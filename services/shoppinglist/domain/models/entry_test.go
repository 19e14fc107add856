package models

import (
	"errors"
	"testing"
	"time"

	listdomain "github.com/ghuser/budgeteer/services/shoppinglist/domain"
)

var t0 = time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

func TestList_Add(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "Milk", "Milk", false},
		{"trimmed", "  Eggs \t", "Eggs", false},
		{"empty", "", "", true},
		{"whitespace only", "   \n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList(nil)
			e, err := l.Add(tt.input, t0)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Add(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, listdomain.ErrBlankName) {
					t.Fatalf("expected ErrBlankName, got %v", err)
				}
				if !l.IsEmpty() {
					t.Fatal("rejected add must not change the list")
				}
				return
			}
			if e.Name != tt.want || e.Checked || e.ID != t0.UnixMilli() {
				t.Fatalf("unexpected entry %+v", e)
			}
		})
	}
}

func TestList_AddUniqueIDsWithinSameMillisecond(t *testing.T) {
	l := NewList(nil)
	a, _ := l.Add("Milk", t0)
	b, _ := l.Add("Bread", t0)
	c, _ := l.Add("Eggs", t0.Add(-time.Second))

	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Fatalf("ids must be unique: %d %d %d", a.ID, b.ID, c.ID)
	}
}

func TestList_ToggleAndRemove(t *testing.T) {
	l := NewList(nil)
	milk, _ := l.Add("Milk", t0)
	bread, _ := l.Add("Bread", t0.Add(time.Millisecond))

	e, err := l.Toggle(milk.ID)
	if err != nil || !e.Checked {
		t.Fatalf("expected checked entry, got %+v (%v)", e, err)
	}
	e, _ = l.Toggle(milk.ID)
	if e.Checked {
		t.Fatal("second toggle must uncheck")
	}

	if err := l.Remove(milk.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Entries) != 1 || l.Entries[0].ID != bread.ID {
		t.Fatalf("unexpected entries %+v", l.Entries)
	}

	if err := l.Remove(milk.ID); !errors.Is(err, listdomain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if _, err := l.Toggle(12345); !errors.Is(err, listdomain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestList_Clear(t *testing.T) {
	l := NewList(nil)
	for _, n := range []string{"Milk", "Bread", "Eggs"} {
		if _, err := l.Add(n, t0); err != nil {
			t.Fatal(err)
		}
	}

	l.Clear()

	if !l.IsEmpty() || l.Entries == nil {
		t.Fatalf("expected empty non-nil entries, got %#v", l.Entries)
	}
}
