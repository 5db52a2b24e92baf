package book_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/duamind/pkg/model"
	"github.com/m-mizutani/duamind/pkg/repository"
	"github.com/m-mizutani/duamind/pkg/usecase/book"
	"github.com/m-mizutani/gt"
)

func newBook(t *testing.T, storage repository.Storage) *book.Book {
	t.Helper()
	return book.New(context.Background(), storage)
}

func TestInsertAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()

	// A frozen clock forces every timestamp-derived ID to collide
	frozen := time.UnixMilli(1700000000000)
	b := book.New(ctx, storage, book.WithClock(func() time.Time { return frozen }))

	first, err := b.Insert(ctx, model.Dua{Text: "a", Topic: model.TopicHoffnung, Style: model.StyleKurz})
	gt.NoError(t, err)
	second, err := b.Insert(ctx, model.Dua{Text: "b", Topic: model.TopicFamilie, Style: model.StyleMittel})
	gt.NoError(t, err)

	gt.Equal(t, first.ID, model.DuaID(1700000000000))
	gt.Equal(t, second.ID, model.DuaID(1700000000001))
}

func TestInsertEvictsBeyondCap(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()
	b := newBook(t, storage)

	var ids []model.DuaID
	for i := 0; i < book.MaxSavedDuas+5; i++ {
		dua, err := b.Insert(ctx, model.Dua{Text: fmt.Sprintf("dua %d", i), Topic: model.TopicDankbarkeit, Style: model.StyleKurz})
		gt.NoError(t, err)
		ids = append(ids, dua.ID)
	}

	gt.Equal(t, b.Size(), book.MaxSavedDuas)

	// The survivors are the most recently inserted items
	duas := b.List(book.All)
	gt.A(t, duas).Length(book.MaxSavedDuas)
	gt.Equal(t, duas[0].ID, ids[len(ids)-1])
	gt.Equal(t, duas[len(duas)-1].ID, ids[5])

	// Reloading yields exactly the last-persisted collection
	reloaded := newBook(t, storage)
	reloadedDuas := reloaded.List(book.All)
	gt.A(t, reloadedDuas).Length(book.MaxSavedDuas)
	for i := range duas {
		gt.Equal(t, reloadedDuas[i].ID, duas[i].ID)
		gt.Equal(t, reloadedDuas[i].Text, duas[i].Text)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()
	b := newBook(t, storage)

	dua, err := b.Insert(ctx, model.Dua{Text: "x", Topic: model.TopicVergebung, Style: model.StyleKlassisch})
	gt.NoError(t, err)
	gt.Equal(t, b.Size(), 1)

	gt.NoError(t, b.Remove(ctx, dua.ID))
	gt.Equal(t, b.Size(), 0)

	reloaded := newBook(t, storage)
	gt.Nil(t, reloaded.Get(dua.ID))
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()
	b := newBook(t, storage)

	_, err := b.Insert(ctx, model.Dua{Text: "x", Topic: model.TopicVergebung, Style: model.StyleKurz})
	gt.NoError(t, err)

	gt.NoError(t, b.Remove(ctx, model.DuaID(42)))
	gt.Equal(t, b.Size(), 1)
}

func TestAbsentIDMutationsStillPersistAndNotify(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()
	b := newBook(t, storage)

	_, err := b.Insert(ctx, model.Dua{Text: "x", Topic: model.TopicHoffnung, Style: model.StyleKurz})
	gt.NoError(t, err)

	var calls int
	b.Subscribe(func([]model.Dua) { calls++ })

	gt.NoError(t, b.Remove(ctx, model.DuaID(42)))
	gt.NoError(t, b.ToggleFavorite(ctx, model.DuaID(42)))

	gt.Equal(t, calls, 2)
	gt.Equal(t, b.Size(), 1)
}

func TestToggleFavoriteInvolution(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()
	b := newBook(t, storage)

	dua, err := b.Insert(ctx, model.Dua{Text: "x", Topic: model.TopicMotivation, Style: model.StyleMittel})
	gt.NoError(t, err)
	gt.False(t, dua.IsFavorite)

	gt.NoError(t, b.ToggleFavorite(ctx, dua.ID))
	gt.True(t, b.Get(dua.ID).IsFavorite)

	gt.NoError(t, b.ToggleFavorite(ctx, dua.ID))
	gt.False(t, b.Get(dua.ID).IsFavorite)

	// Absent ID is a no-op
	gt.NoError(t, b.ToggleFavorite(ctx, model.DuaID(42)))
}

func TestListSortedAndFiltered(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()
	b := newBook(t, storage)

	var ids []model.DuaID
	for i := 0; i < 4; i++ {
		dua, err := b.Insert(ctx, model.Dua{Text: fmt.Sprintf("dua %d", i), Topic: model.TopicHoffnung, Style: model.StyleKurz})
		gt.NoError(t, err)
		ids = append(ids, dua.ID)
	}
	gt.NoError(t, b.ToggleFavorite(ctx, ids[0]))
	gt.NoError(t, b.ToggleFavorite(ctx, ids[2]))

	all := b.List(book.All)
	gt.A(t, all).Length(4)
	for i := 1; i < len(all); i++ {
		gt.True(t, all[i-1].ID > all[i].ID)
	}

	favorites := b.List(book.FavoritesOnly)
	gt.A(t, favorites).Length(2)
	for i := 1; i < len(favorites); i++ {
		gt.True(t, favorites[i-1].ID > favorites[i].ID)
	}
	for _, dua := range favorites {
		gt.True(t, dua.IsFavorite)
	}
}

func TestLoadCorruptDataStartsEmpty(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()
	gt.NoError(t, storage.Set(ctx, book.StorageKey, "{not json"))

	b := book.New(ctx, storage)
	gt.Equal(t, b.Size(), 0)
}

// failingStorage fails every read but accepts writes
type failingStorage struct {
	getErr error
	stored map[string]string
}

func (s *failingStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, s.getErr
}

func (s *failingStorage) Set(ctx context.Context, key, value string) error {
	if s.stored == nil {
		s.stored = map[string]string{}
	}
	s.stored[key] = value
	return nil
}

func TestLoadUnreadableStorageStartsEmpty(t *testing.T) {
	ctx := context.Background()
	storage := &failingStorage{getErr: errors.New("disk read error")}

	b := book.New(ctx, storage)
	gt.Equal(t, b.Size(), 0)

	// The book stays usable and later mutations persist normally
	dua, err := b.Insert(ctx, model.Dua{Text: "x", Topic: model.TopicHoffnung, Style: model.StyleKurz})
	gt.NoError(t, err)
	gt.Equal(t, b.Size(), 1)
	gt.S(t, storage.stored[book.StorageKey]).Contains(fmt.Sprintf("%d", dua.ID))
}

func TestLoadToleratesMissingFavoriteField(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()
	raw := `[{"id":5,"duaText":"alt","topic":"Familie","style":"mittel","date":"2024-01-01T00:00:00Z","withAnrede":true}]`
	gt.NoError(t, storage.Set(ctx, book.StorageKey, raw))

	b := book.New(ctx, storage)
	gt.Equal(t, b.Size(), 1)
	gt.False(t, b.Get(model.DuaID(5)).IsFavorite)
}

func TestObserverNotifiedOnMutation(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemory()
	b := newBook(t, storage)

	var calls [][]model.Dua
	b.Subscribe(func(duas []model.Dua) {
		calls = append(calls, duas)
	})

	dua, err := b.Insert(ctx, model.Dua{Text: "x", Topic: model.TopicFamilie, Style: model.StyleKurz})
	gt.NoError(t, err)
	gt.NoError(t, b.ToggleFavorite(ctx, dua.ID))
	gt.NoError(t, b.Remove(ctx, dua.ID))

	gt.A(t, calls).Length(3)
	gt.A(t, calls[0]).Length(1)
	gt.True(t, calls[1][0].IsFavorite)
	gt.A(t, calls[2]).Length(0)
}
