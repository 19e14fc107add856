package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	listdomain "github.com/ghuser/budgeteer/services/shoppinglist/domain"
)

// Entry is one free-text want-item on a shopping list. It is independent of
// catalog identity until a comparison matches it against product names.
type Entry struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Checked bool      `json:"checked"`
	AddedAt time.Time `json:"added_at"`
}

// List is a whole shopping list. It is persisted as one snapshot after every
// mutation.
type List struct {
	Entries []Entry `json:"entries"`
}

// NewList wraps entries, treating nil as empty.
func NewList(entries []Entry) *List {
	if entries == nil {
		entries = []Entry{}
	}
	return &List{Entries: entries}
}

// IsEmpty reports whether the list has no entries.
func (l *List) IsEmpty() bool {
	return len(l.Entries) == 0
}

// Add appends a trimmed, non-blank name. The id is derived from now in
// milliseconds and bumped past the largest existing id when two adds land in
// the same millisecond.
func (l *List) Add(name string, now time.Time) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, listdomain.ErrBlankName
	}
	id := now.UnixMilli()
	for _, e := range l.Entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	entry := Entry{ID: id, Name: name, AddedAt: now.UTC()}
	l.Entries = append(l.Entries, entry)
	return entry, nil
}

// Remove deletes the entry with id.
func (l *List) Remove(id int64) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", listdomain.ErrEntryNotFound, id)
	}
	l.Entries = slices.Delete(l.Entries, i, i+1)
	return nil
}

// Toggle flips the checked flag of the entry with id and returns it.
func (l *List) Toggle(id int64) (Entry, error) {
	i := l.index(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("%w: %d", listdomain.ErrEntryNotFound, id)
	}
	l.Entries[i].Checked = !l.Entries[i].Checked
	return l.Entries[i], nil
}

// Clear removes every entry. Confirmation is the caller's concern.
func (l *List) Clear() {
	l.Entries = []Entry{}
}

// Names returns the entry names in list order.
func (l *List) Names() []string {
	names := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		names[i] = e.Name
	}
	return names
}

func (l *List) index(id int64) int {
	return slices.IndexFunc(l.Entries, func(e Entry) bool { return e.ID == id })
}
