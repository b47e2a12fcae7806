package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	"github.com/oksasatya/spotify-electron-api/pkg/helpers"
)

func newTestPlaylistService(repo *memPlaylistRepo, songs ...string) *PlaylistService {
	svc := NewPlaylistService(repo, NewSongCatalog(newMemSongRepo(songs...)), nil, helpers.NewDiscardLogger())
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC) }
	return svc
}

func songNames(songs []entity.Song) []string {
	out := make([]string, 0, len(songs))
	for _, s := range songs {
		out = append(out, s.Name)
	}
	return out
}

func TestCreateThenGetPlaylistKeepsStoredOrder(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlaylistRepo()
	svc := newTestPlaylistService(repo, "x", "y", "z")

	ok, err := svc.CreatePlaylist(ctx, "mix", "http://img/mix.png", "road trip", []string{"y", "x", "y"})
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, []string{"y", "x", "y"}, repo.playlists["mix"].SongNames)
	assert.Equal(t, "2026-10-19T12:30:00Z", repo.playlists["mix"].UploadDate)

	p, err := svc.GetPlaylist(ctx, "mix")
	require.NoError(t, err)
	assert.Equal(t, "road trip", p.Description)
	assert.Equal(t, "http://img/mix.png", p.Photo)
	assert.Equal(t, "2026-10-19T12:30:00", p.UploadDate)
	assert.Equal(t, []string{"y", "x", "y"}, songNames(p.Songs))
	assert.Equal(t, "artist-y", p.Songs[0].Artist)
}

func TestCreatePlaylistFailures(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlaylistRepo()
	svc := newTestPlaylistService(repo, "x")

	_, err := svc.CreatePlaylist(ctx, "mix", "", "", []string{"x", "missing"})
	assert.ErrorIs(t, err, ErrSongNotFound)
	assert.Empty(t, repo.playlists)

	_, err = svc.CreatePlaylist(ctx, "mix", "", "", []string{"x"})
	require.NoError(t, err)
	ok, err := svc.CreatePlaylist(ctx, "mix", "http://other", "", nil)
	assert.ErrorIs(t, err, ErrPlaylistAlreadyExists)
	assert.False(t, ok)
	assert.Equal(t, "", repo.playlists["mix"].Photo)
}

func TestGetPlaylistFailsOnDanglingSong(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlaylistRepo()
	repo.playlists["mix"] = entity.PlaylistRecord{Name: "mix", SongNames: []string{"x", "deleted"}}
	svc := newTestPlaylistService(repo, "x")

	p, err := svc.GetPlaylist(ctx, "mix")
	assert.ErrorIs(t, err, ErrSongNotFound)
	assert.Nil(t, p)

	_, err = svc.GetPlaylist(ctx, "ghost")
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
}

func TestUpdatePlaylist(t *testing.T) {
	ctx := context.Background()

	t.Run("dedupes song names", func(t *testing.T) {
		repo := newMemPlaylistRepo()
		svc := newTestPlaylistService(repo, "a", "b")
		_, err := svc.CreatePlaylist(ctx, "mix", "", "", []string{"a"})
		require.NoError(t, err)

		require.NoError(t, svc.UpdatePlaylist(ctx, "mix", "", "http://p", "new", []string{"a", "a", "b"}))

		got := repo.playlists["mix"]
		assert.ElementsMatch(t, []string{"a", "b"}, got.SongNames)
		assert.Len(t, got.SongNames, 2)
		assert.Equal(t, "new", got.Description)
		assert.Equal(t, "http://p", got.Photo)
		assert.Equal(t, "2026-10-19T12:30:00Z", got.UploadDate)
	})

	t.Run("renames when new name is valid", func(t *testing.T) {
		repo := newMemPlaylistRepo()
		svc := newTestPlaylistService(repo)
		_, err := svc.CreatePlaylist(ctx, "mix", "", "", nil)
		require.NoError(t, err)

		require.NoError(t, svc.UpdatePlaylist(ctx, "mix", "  ", "", "kept name", nil))
		assert.Contains(t, repo.playlists, "mix")

		require.NoError(t, svc.UpdatePlaylist(ctx, "mix", "mix v2", "", "renamed", nil))
		assert.NotContains(t, repo.playlists, "mix")
		assert.Equal(t, "renamed", repo.playlists["mix v2"].Description)
	})

	t.Run("rename onto existing playlist", func(t *testing.T) {
		repo := newMemPlaylistRepo()
		svc := newTestPlaylistService(repo)
		_, _ = svc.CreatePlaylist(ctx, "a", "", "", nil)
		_, _ = svc.CreatePlaylist(ctx, "b", "", "", nil)

		err := svc.UpdatePlaylist(ctx, "a", "b", "", "", nil)
		assert.ErrorIs(t, err, ErrPlaylistAlreadyExists)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestPlaylistService(newMemPlaylistRepo())
		assert.ErrorIs(t, svc.UpdatePlaylist(ctx, "ghost", "", "", "", nil), ErrPlaylistNotFound)
	})
}

func TestDeletePlaylist(t *testing.T) {
	ctx := context.Background()
	svc := newTestPlaylistService(newMemPlaylistRepo())

	assert.ErrorIs(t, svc.DeletePlaylist(ctx, "ghost"), ErrPlaylistNotFound)

	_, err := svc.CreatePlaylist(ctx, "mix", "", "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.DeletePlaylist(ctx, "mix"))

	_, err = svc.GetPlaylist(ctx, "mix")
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
}

func TestPlaylistProjections(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlaylistRepo()
	svc := newTestPlaylistService(repo, "x")
	_, err := svc.CreatePlaylist(ctx, "p1", "", "first", []string{"x"})
	require.NoError(t, err)
	_, err = svc.CreatePlaylist(ctx, "p2", "", "second", nil)
	require.NoError(t, err)

	all, err := svc.GetAllPlaylists(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, entity.PlaylistDTO{
		Name:        "p1",
		Description: "first",
		UploadDate:  "2026-10-19T12:30:00",
		SongNames:   []string{"x"},
	}, all[0])

	selected, err := svc.GetSelectedPlaylists(ctx, []string{"p1", "missing"})
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "p1", selected[0].Name)

	none, err := svc.GetSelectedPlaylists(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPlaylistOperationsRejectInvalidNames(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlaylistRepo()
	svc := newTestPlaylistService(repo)

	_, err := svc.GetPlaylist(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.CreatePlaylist(ctx, " ", "", "", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, svc.UpdatePlaylist(ctx, "", "new", "", "", nil), ErrInvalidArgument)
	assert.ErrorIs(t, svc.DeletePlaylist(ctx, ""), ErrInvalidArgument)
	assert.Zero(t, repo.calls)
}

func TestPlaylistRenameEvent(t *testing.T) {
	ctx := context.Background()
	pub := new(mockPublisher)
	pub.On("PublishJSON", mock.Anything, mock.MatchedBy(func(ev Event) bool {
		return ev.Type == EventPlaylistCreated
	})).Return(nil)
	pub.On("PublishJSON", mock.Anything, mock.MatchedBy(func(ev Event) bool {
		return ev.Type == EventPlaylistUpdated && ev.Name == "mix" && ev.NewName == "mix v2"
	})).Return(nil).Once()

	svc := newTestPlaylistService(newMemPlaylistRepo())
	svc.Events = pub
	_, err := svc.CreatePlaylist(ctx, "mix", "", "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.UpdatePlaylist(ctx, "mix", "mix v2", "", "", nil))

	pub.AssertExpectations(t)
}

func TestSongCatalogGetManyKeepsOrder(t *testing.T) {
	cat := NewSongCatalog(newMemSongRepo("a", "b"))

	got, err := cat.GetMany(context.Background(), []string{"b", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "b"}, songNames(got))

	_, err = cat.GetMany(context.Background(), []string{"a", "c"})
	assert.ErrorIs(t, err, ErrSongNotFound)
	assert.Contains(t, err.Error(), "c")
}

func TestValidationHelpers(t *testing.T) {
	assert.True(t, ValidName("ana"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName(" \n"))

	assert.Equal(t, "http://x", PermissivePhoto("http://x"))
	assert.Equal(t, "see https://x", PermissivePhoto("see https://x"))
	assert.Equal(t, "", PermissivePhoto("www.x.com"))

	assert.Equal(t, []string{"a", "b"}, Dedupe([]string{"a", "b", "a"}))
	assert.Equal(t, []string{}, Dedupe(nil))
}
