package book

import (
	"context"

	"github.com/m-mizutani/duamind/pkg/model"
)

// Remove deletes the dua with the given ID. An absent ID leaves the
// collection unchanged but the result is still persisted and observers
// are notified.
func (b *Book) Remove(ctx context.Context, id model.DuaID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	duas := make([]model.Dua, 0, len(b.duas))
	for _, dua := range b.duas {
		if dua.ID != id {
			duas = append(duas, dua)
		}
	}
	b.duas = duas

	return b.persist(ctx)
}
