package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/telemetry"
	listdomain "github.com/ghuser/budgeteer/services/shoppinglist/domain"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/events"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/models"
	"github.com/ghuser/budgeteer/services/shoppinglist/domain/repositories"
)

// EmptyListMessage is shown in place of entries when a list has none.
const EmptyListMessage = "Your shopping list is empty. Add items to get started!"

// Change describes one persisted mutation, delivered to observers.
type Change struct {
	ShopperID string
	Op        string
	EntryID   int64
	List      *models.List
}

// Observer is notified after every successful save. Observers run
// synchronously in registration order and must not block.
type Observer interface {
	ListChanged(ctx context.Context, c Change)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, c Change)

func (f ObserverFunc) ListChanged(ctx context.Context, c Change) { f(ctx, c) }

// ListView is a shopping list ready for display.
type ListView struct {
	Entries      []models.Entry `json:"entries"`
	Count        int            `json:"count"`
	CheckedCount int            `json:"checked_count"`
	Message      string         `json:"message,omitempty"`
}

// NewListView summarizes l.
func NewListView(l *models.List) ListView {
	v := ListView{Entries: l.Entries, Count: len(l.Entries)}
	for _, e := range l.Entries {
		if e.Checked {
			v.CheckedCount++
		}
	}
	if l.IsEmpty() {
		v.Message = EmptyListMessage
	}
	return v
}

const lockStripes = 64

// ListService applies shopping list mutations. Every mutation loads the
// shopper's list, changes it and saves the whole snapshot. Mutations for one
// shopper are serialized within the process; across processes the store is
// last-write-wins.
type ListService struct {
	store     repositories.ListStore
	observers []Observer
	metrics   *telemetry.Metrics
	log       logger.Logger
	now       func() time.Time
	locks     [lockStripes]sync.Mutex
}

// NewListService returns a ListService persisting to store.
func NewListService(store repositories.ListStore, metrics *telemetry.Metrics, log logger.Logger) *ListService {
	return &ListService{store: store, metrics: metrics, log: log, now: time.Now}
}

// Observe registers o for change notifications. Call before serving.
func (s *ListService) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

// Get returns the shopper's list.
func (s *ListService) Get(ctx context.Context, shopperID string) (ListView, error) {
	l, err := s.store.Load(ctx, shopperID)
	if err != nil {
		return ListView{}, fmt.Errorf("load shopping list: %w", err)
	}
	return NewListView(l), nil
}

// Add appends name to the list.
func (s *ListService) Add(ctx context.Context, shopperID, name string) (models.Entry, error) {
	var added models.Entry
	err := s.mutate(ctx, shopperID, events.OpAdd, func(l *models.List) (int64, error) {
		e, err := l.Add(name, s.now())
		added = e
		return e.ID, err
	})
	return added, err
}

// AddMany appends every non-blank name in one save and returns how many were
// added. Blank names are skipped, not rejected.
func (s *ListService) AddMany(ctx context.Context, shopperID string, names []string) (int, error) {
	added := 0
	err := s.mutate(ctx, shopperID, events.OpAdd, func(l *models.List) (int64, error) {
		now := s.now()
		for _, n := range names {
			if _, err := l.Add(n, now); err == nil {
				added++
			}
		}
		if added == 0 {
			return 0, fmt.Errorf("%w: no usable names", listdomain.ErrBlankName)
		}
		return 0, nil
	})
	return added, err
}

// Remove deletes entry id.
func (s *ListService) Remove(ctx context.Context, shopperID string, id int64) error {
	return s.mutate(ctx, shopperID, events.OpRemove, func(l *models.List) (int64, error) {
		return id, l.Remove(id)
	})
}

// Toggle flips entry id's checked flag.
func (s *ListService) Toggle(ctx context.Context, shopperID string, id int64) (models.Entry, error) {
	var toggled models.Entry
	err := s.mutate(ctx, shopperID, events.OpToggle, func(l *models.List) (int64, error) {
		e, err := l.Toggle(id)
		toggled = e
		return id, err
	})
	return toggled, err
}

// Clear empties the list. It is destructive and requires confirmed=true.
func (s *ListService) Clear(ctx context.Context, shopperID string, confirmed bool) (ListView, error) {
	if !confirmed {
		return ListView{}, listdomain.ErrConfirmationRequired
	}
	var view ListView
	err := s.mutate(ctx, shopperID, events.OpClear, func(l *models.List) (int64, error) {
		l.Clear()
		view = NewListView(l)
		return 0, nil
	})
	return view, err
}

func (s *ListService) mutate(ctx context.Context, shopperID, op string, fn func(*models.List) (int64, error)) error {
	mu := s.lockFor(shopperID)
	mu.Lock()
	defer mu.Unlock()

	l, err := s.store.Load(ctx, shopperID)
	if err != nil {
		return fmt.Errorf("load shopping list: %w", err)
	}
	entryID, err := fn(l)
	if err != nil {
		return fmt.Errorf("%s entry: %w", op, err)
	}
	if err := s.store.Save(ctx, shopperID, l); err != nil {
		return fmt.Errorf("save shopping list: %w", err)
	}

	s.metrics.ListMutated(ctx, op)
	s.log.InfoContext(ctx, "shopping list updated", "op", op, "entries", len(l.Entries))
	change := Change{ShopperID: shopperID, Op: op, EntryID: entryID, List: l}
	for _, o := range s.observers {
		o.ListChanged(ctx, change)
	}
	return nil
}

func (s *ListService) lockFor(shopperID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(shopperID))
	return &s.locks[h.Sum32()%lockStripes]
}
