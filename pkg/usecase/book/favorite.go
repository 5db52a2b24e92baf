package book

import (
	"context"

	"github.com/m-mizutani/duamind/pkg/model"
)

// ToggleFavorite flips the favorite mark on the dua with the given ID.
// An absent ID leaves the collection unchanged but the result is still
// persisted and observers are notified.
func (b *Book) ToggleFavorite(ctx context.Context, id model.DuaID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.duas {
		if b.duas[i].ID == id {
			b.duas[i].IsFavorite = !b.duas[i].IsFavorite
			break
		}
	}
	return b.persist(ctx)
}
