package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *AnnotationStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and serializes
	// writers, mirroring the production setup.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(Models()...))
	return NewAnnotationStore(db)
}

func TestAddFavorite_Idempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddFavorite("alice", 5))
	require.NoError(t, s.AddFavorite("alice", 5))

	favorites, err := s.Favorites("alice")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, favorites)
}

func TestRemoveFavorite_AbsentIsNoOp(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.RemoveFavorite("alice", 99))

	favorites, err := s.Favorites("alice")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavorites_InsertionOrderAndRemoval(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []int{7, 3, 12} {
		require.NoError(t, s.AddFavorite("alice", id))
	}
	require.NoError(t, s.RemoveFavorite("alice", 3))

	favorites, err := s.Favorites("alice")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 12}, favorites)
}

func TestFavorites_UsersAreIsolated(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddFavorite("alice", 1))
	require.NoError(t, s.AddFavorite("bob", 2))

	aliceFavs, err := s.Favorites("alice")
	require.NoError(t, err)
	bobFavs, err := s.Favorites("bob")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, aliceFavs)
	assert.Equal(t, []int{2}, bobFavs)
}

func TestSaveNote_Overwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveNote("bob", 12, "follow up"))
	require.NoError(t, s.SaveNote("bob", 12, "done"))

	notes, err := s.Notes("bob")
	require.NoError(t, err)
	assert.Equal(t, map[int]string{12: "done"}, notes)
}

func TestSaveNote_MultipleSuppliers(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveNote("bob", 1, "first"))
	require.NoError(t, s.SaveNote("bob", 2, "second"))

	notes, err := s.Notes("bob")
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "first", 2: "second"}, notes)
}

func TestAppendInboxMessage_SequenceAndUnread(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AppendInboxMessage("alice", "hi"))
	require.NoError(t, s.AppendInboxMessage("alice", "hello again"))

	inbox, err := s.Inbox("alice")
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, 1, inbox[0].Seq)
	assert.Equal(t, "hi", inbox[0].Message)
	assert.False(t, inbox[0].Read)
	assert.Equal(t, 2, inbox[1].Seq)
	assert.Equal(t, "hello again", inbox[1].Message)
	assert.False(t, inbox[1].Read)
}

func TestInbox_SequencesScopedPerUser(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AppendInboxMessage("alice", "a1"))
	require.NoError(t, s.AppendInboxMessage("bob", "b1"))
	require.NoError(t, s.AppendInboxMessage("alice", "a2"))

	bobInbox, err := s.Inbox("bob")
	require.NoError(t, err)
	require.Len(t, bobInbox, 1)
	assert.Equal(t, 1, bobInbox[0].Seq)
}

func TestProfile_UnknownUserIsEmpty(t *testing.T) {
	s := newTestStore(t)

	profile, err := s.Profile("nobody")
	require.NoError(t, err)
	assert.Empty(t, profile.Favorites)
	assert.Empty(t, profile.Notes)
	assert.Empty(t, profile.Inbox)
	assert.Equal(t, "light", profile.Preferences["theme"])
}

func TestProfile_ReflectsAnnotations(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddFavorite("carol", 8))
	require.NoError(t, s.SaveNote("carol", 8, "call back"))
	require.NoError(t, s.AppendInboxMessage("carol", "welcome"))

	profile, err := s.Profile("carol")
	require.NoError(t, err)
	assert.Equal(t, []int{8}, profile.Favorites)
	assert.Equal(t, map[int]string{8: "call back"}, profile.Notes)
	require.Len(t, profile.Inbox, 1)
	assert.Equal(t, "welcome", profile.Inbox[0].Message)
}

func TestAnnotationStore_ConcurrentMutations(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if err := s.AddFavorite("alice", id); err != nil {
				t.Error(err)
			}
			if err := s.AppendInboxMessage("alice", fmt.Sprintf("msg %d", id)); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	favorites, err := s.Favorites("alice")
	require.NoError(t, err)
	assert.Len(t, favorites, 20)

	inbox, err := s.Inbox("alice")
	require.NoError(t, err)
	require.Len(t, inbox, 20)
	for i, msg := range inbox {
		assert.Equal(t, i+1, msg.Seq)
	}
}
