package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	"github.com/oksasatya/spotify-electron-api/internal/domain/repository"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	ok, err := users.Create(ctx, &entity.User{Name: "ana", Playlists: []string{"mix"}})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = users.Create(ctx, &entity.User{Name: "ana"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	got, err := users.GetByName(ctx, "ana")
	require.NoError(t, err)
	got.Playlists[0] = "mutated"
	again, _ := users.GetByName(ctx, "ana")
	assert.Equal(t, []string{"mix"}, again.Playlists)

	require.NoError(t, users.SetPhoto(ctx, "ana", "https://img.test/a.png"))
	require.NoError(t, users.Update(ctx, &entity.User{Name: "ana", Photo: "", PlaybackHistory: []string{"intro"}}))
	again, _ = users.GetByName(ctx, "ana")
	assert.Equal(t, "", again.Photo)
	assert.Equal(t, []string{"intro"}, again.PlaybackHistory)

	assert.ErrorIs(t, users.Update(ctx, &entity.User{Name: "ghost"}), repository.ErrNotFound)
	assert.ErrorIs(t, users.SetPhoto(ctx, "ghost", "x"), repository.ErrNotFound)
	require.NoError(t, users.Delete(ctx, "ana"))
	assert.ErrorIs(t, users.Delete(ctx, "ana"), repository.ErrNotFound)
	_, err = users.GetByName(ctx, "ana")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlaylistRepository(t *testing.T) {
	ctx := context.Background()
	playlists := NewStore().Playlists()
	for _, name := range []string{"c", "a", "b"} {
		_, err := playlists.Create(ctx, &entity.PlaylistRecord{Name: name, SongNames: []string{"x"}})
		require.NoError(t, err)
	}

	all, err := playlists.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "c", all[2].Name)

	some, err := playlists.ListByNames(ctx, []string{"c", "nope", "a"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "a", some[0].Name)

	err = playlists.Update(ctx, "a", &entity.PlaylistRecord{Name: "b"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	require.NoError(t, playlists.Update(ctx, "a", &entity.PlaylistRecord{Name: "z", Description: "renamed"}))
	_, err = playlists.GetByName(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	z, err := playlists.GetByName(ctx, "z")
	require.NoError(t, err)
	assert.Equal(t, "renamed", z.Description)

	assert.ErrorIs(t, playlists.Update(ctx, "ghost", &entity.PlaylistRecord{Name: "ghost"}), repository.ErrNotFound)
	assert.ErrorIs(t, playlists.Delete(ctx, "ghost"), repository.ErrNotFound)
}

func TestSongRepository(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	songs := s.Songs()
	require.NoError(t, songs.Upsert(ctx, entity.Song{Name: "intro", Duration: 100}))
	require.NoError(t, songs.Upsert(ctx, entity.Song{Name: "intro", Duration: 120}))

	got, err := songs.GetByName(ctx, "intro")
	require.NoError(t, err)
	assert.Equal(t, 120, got.Duration)

	many, err := songs.GetByNames(ctx, []string{"intro", "missing"})
	require.NoError(t, err)
	assert.Len(t, many, 1)

	_, err = songs.GetByName(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, s.Ping(ctx))
}
