package notification

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/notifyd/internal/model"
)

func TestRepository_AllocateID_Sequential(t *testing.T) {
	repo := NewRepository()

	for want := uint32(1); want <= 100; want++ {
		assert.Equal(t, want, repo.AllocateID())
	}

	count, next := repo.Stats()
	assert.Equal(t, 0, count)
	assert.Equal(t, uint32(101), next)
}

func TestRepository_AllocateID_WraparoundSkipsZero(t *testing.T) {
	repo := NewRepository()
	repo.nextID = math.MaxUint32

	assert.Equal(t, uint32(math.MaxUint32), repo.AllocateID())
	assert.Equal(t, uint32(1), repo.AllocateID())
	assert.Equal(t, uint32(2), repo.AllocateID())
}

func TestRepository_AllocateID_Concurrent(t *testing.T) {
	repo := NewRepository()

	const (
		goroutines = 8
		perG       = 100
	)

	var (
		mu  sync.Mutex
		ids = make(map[uint32]struct{}, goroutines*perG)
		wg  sync.WaitGroup
	)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()

			for i := 0; i < perG; i++ {
				id := repo.AllocateID()

				mu.Lock()
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, ids, goroutines*perG)

	_, taken := ids[0]
	assert.False(t, taken, "allocator must never yield 0")
}

func TestRepository_Save_CreatesAndReplaces(t *testing.T) {
	repo := NewRepository()

	repo.Save(model.Notification{ID: 1, AppName: "Mail", Summary: "New message"})

	count, _ := repo.Stats()
	require.Equal(t, 1, count)

	repo.Save(model.Notification{ID: 1, AppName: "Mail", Summary: "Updated"})

	count, _ = repo.Stats()
	assert.Equal(t, 1, count, "replace must not create a second record")

	notifications := repo.List()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Updated", notifications[0].Summary)
}

func TestRepository_Remove(t *testing.T) {
	repo := NewRepository()
	repo.Save(model.Notification{ID: 7, Summary: "to be closed"})

	removed, ok := repo.Remove(7)
	require.True(t, ok)
	assert.Equal(t, "to be closed", removed.Summary)

	count, _ := repo.Stats()
	assert.Equal(t, 0, count)

	_, ok = repo.Remove(7)
	assert.False(t, ok, "second remove of the same id must report absence")
}

func TestRepository_Remove_Missing(t *testing.T) {
	repo := NewRepository()

	_, ok := repo.Remove(42)
	assert.False(t, ok)

	count, next := repo.Stats()
	assert.Equal(t, 0, count)
	assert.Equal(t, uint32(1), next, "remove of a missing id must not touch the allocator")
}

func TestRepository_List_OrderedByID(t *testing.T) {
	repo := NewRepository()
	repo.Save(model.Notification{ID: 3, Summary: "c"})
	repo.Save(model.Notification{ID: 1, Summary: "a"})
	repo.Save(model.Notification{ID: 2, Summary: "b"})

	notifications := repo.List()
	require.Len(t, notifications, 3)

	for i, want := range []uint32{1, 2, 3} {
		assert.Equal(t, want, notifications[i].ID)
	}
}
