package book

import (
	"context"

	"github.com/m-mizutani/duamind/pkg/model"
)

// Insert saves a new dua at the front of the prayer book and assigns its
// ID and creation time. When the book exceeds MaxSavedDuas the oldest
// items are truncated from the back.
func (b *Book) Insert(ctx context.Context, dua model.Dua) (*model.Dua, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	dua.CreatedAt = now

	// Timestamp-derived ID, bumped past the current maximum so saves
	// within the same millisecond stay unique.
	id := model.NewDuaID(now)
	for _, existing := range b.duas {
		if existing.ID >= id {
			id = existing.ID + 1
		}
	}
	dua.ID = id

	b.duas = append([]model.Dua{dua}, b.duas...)
	if len(b.duas) > MaxSavedDuas {
		b.duas = b.duas[:MaxSavedDuas]
	}

	if err := b.persist(ctx); err != nil {
		return nil, err
	}
	return &dua, nil
}
