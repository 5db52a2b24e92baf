package book

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/m-mizutani/duamind/pkg/model"
	"github.com/m-mizutani/duamind/pkg/repository"
	"github.com/m-mizutani/duamind/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// StorageKey is the key the whole prayer book is persisted under.
	StorageKey = "duaMindPrayerBook"

	// MaxSavedDuas caps the prayer book; inserting beyond the cap evicts
	// the oldest-by-position item.
	MaxSavedDuas = 100
)

// Observer is notified with the full collection after every mutation.
type Observer func(duas []model.Dua)

// Book is the saved-item store. It owns the canonical in-memory copy of
// the prayer book and writes the whole collection through the storage
// port on every mutation.
type Book struct {
	storage   repository.Storage
	key       string
	now       func() time.Time
	mu        sync.Mutex
	duas      []model.Dua
	observers []Observer
}

// Option is a functional option for Book
type Option func(*Book)

// WithKey overrides the storage key
func WithKey(key string) Option {
	return func(b *Book) {
		b.key = key
	}
}

// WithClock overrides the time source used for ID assignment
func WithClock(now func() time.Time) Option {
	return func(b *Book) {
		b.now = now
	}
}

// New creates a Book and loads the persisted collection. Missing,
// unreadable or corrupt data yields an empty book: the failure is
// logged, not propagated.
func New(ctx context.Context, storage repository.Storage, opts ...Option) *Book {
	b := &Book{
		storage: storage,
		key:     StorageKey,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.load(ctx)
	return b
}

// load reads the persisted collection. A load failure must not abort
// startup, so read errors and corrupt data both start an empty book.
func (b *Book) load(ctx context.Context) {
	raw, ok, err := b.storage.Get(ctx, b.key)
	if err != nil {
		logging.From(ctx).Warn("failed to read prayer book, starting empty",
			"key", b.key, "error", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), &b.duas); err != nil {
		logging.From(ctx).Warn("prayer book data is corrupt, starting empty",
			"key", b.key, "error", err)
		b.duas = nil
	}
}

// Subscribe registers an observer called with the new full collection
// after each mutation.
func (b *Book) Subscribe(observer Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers = append(b.observers, observer)
}

// Size returns the number of saved duas.
func (b *Book) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.duas)
}

// persist writes the whole collection and notifies observers. The caller
// must hold b.mu.
func (b *Book) persist(ctx context.Context) error {
	raw, err := json.Marshal(b.duas)
	if err != nil {
		return goerr.Wrap(err, "failed to serialize prayer book")
	}
	if err := b.storage.Set(ctx, b.key, string(raw)); err != nil {
		return goerr.Wrap(err, "failed to persist prayer book", goerr.V("key", b.key))
	}

	snapshot := b.snapshot()
	for _, observer := range b.observers {
		observer(snapshot)
	}
	return nil
}

// snapshot copies the collection so observers and callers cannot mutate
// the canonical state. The caller must hold b.mu.
func (b *Book) snapshot() []model.Dua {
	duas := make([]model.Dua, len(b.duas))
	copy(duas, b.duas)
	return duas
}
