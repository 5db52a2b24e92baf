package book

import (
	"sort"

	"github.com/m-mizutani/duamind/pkg/model"
)

// Filter restricts which duas List returns.
type Filter int

const (
	All Filter = iota
	FavoritesOnly
)

// List returns the saved duas sorted by ID descending, i.e. most recently
// created first regardless of insertion-order manipulation.
func (b *Book) List(filter Filter) []model.Dua {
	b.mu.Lock()
	defer b.mu.Unlock()

	duas := b.snapshot()
	sort.Slice(duas, func(i, j int) bool {
		return duas[i].ID > duas[j].ID
	})

	if filter == FavoritesOnly {
		favorites := make([]model.Dua, 0, len(duas))
		for _, dua := range duas {
			if dua.IsFavorite {
				favorites = append(favorites, dua)
			}
		}
		return favorites
	}
	return duas
}

// Get returns the dua with the given ID, or nil when it does not exist
// (e.g. deleted by another view while a detail reference was held).
func (b *Book) Get(id model.DuaID) *model.Dua {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, dua := range b.duas {
		if dua.ID == id {
			found := dua
			return &found
		}
	}
	return nil
}
