package application

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	"github.com/oksasatya/spotify-electron-api/internal/domain/repository"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
	calls int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.users[u.Name]; ok {
		return false, repository.ErrDuplicate
	}
	r.users[u.Name] = *u
	return true, nil
}

func (r *memUserRepo) GetByName(_ context.Context, name string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	u, ok := r.users[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	cur, ok := r.users[u.Name]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Photo = u.Photo
	cur.Playlists = u.Playlists
	cur.SavedPlaylists = u.SavedPlaylists
	cur.PlaybackHistory = u.PlaybackHistory
	r.users[u.Name] = cur
	return nil
}

func (r *memUserRepo) SetPhoto(_ context.Context, name, photo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	cur, ok := r.users[name]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Photo = photo
	r.users[name] = cur
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.users[name]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, name)
	return nil
}

type memPlaylistRepo struct {
	mu        sync.Mutex
	playlists map[string]entity.PlaylistRecord
	calls     int
}

func newMemPlaylistRepo() *memPlaylistRepo {
	return &memPlaylistRepo{playlists: map[string]entity.PlaylistRecord{}}
}

func (r *memPlaylistRepo) Create(_ context.Context, p *entity.PlaylistRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.playlists[p.Name]; ok {
		return false, repository.ErrDuplicate
	}
	r.playlists[p.Name] = *p
	return true, nil
}

func (r *memPlaylistRepo) GetByName(_ context.Context, name string) (*entity.PlaylistRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	p, ok := r.playlists[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *memPlaylistRepo) Update(_ context.Context, name string, p *entity.PlaylistRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	cur, ok := r.playlists[name]
	if !ok {
		return repository.ErrNotFound
	}
	if p.Name != name {
		if _, taken := r.playlists[p.Name]; taken {
			return repository.ErrDuplicate
		}
	}
	delete(r.playlists, name)
	cur.Name = p.Name
	cur.Photo = p.Photo
	cur.Description = p.Description
	cur.SongNames = p.SongNames
	r.playlists[p.Name] = cur
	return nil
}

func (r *memPlaylistRepo) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.playlists[name]; !ok {
		return repository.ErrNotFound
	}
	delete(r.playlists, name)
	return nil
}

func (r *memPlaylistRepo) List(_ context.Context) ([]entity.PlaylistRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	out := make([]entity.PlaylistRecord, 0, len(r.playlists))
	for _, p := range r.playlists {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memPlaylistRepo) ListByNames(ctx context.Context, names []string) ([]entity.PlaylistRecord, error) {
	all, _ := r.List(ctx)
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	out := []entity.PlaylistRecord{}
	for _, p := range all {
		if want[p.Name] {
			out = append(out, p)
		}
	}
	return out, nil
}

type memSongRepo struct {
	songs map[string]entity.Song
}

func newMemSongRepo(names ...string) *memSongRepo {
	r := &memSongRepo{songs: map[string]entity.Song{}}
	for _, n := range names {
		r.songs[n] = entity.Song{Name: n, Artist: "artist-" + n, Duration: 200}
	}
	return r
}

func (r *memSongRepo) GetByName(_ context.Context, name string) (*entity.Song, error) {
	s, ok := r.songs[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *memSongRepo) GetByNames(_ context.Context, names []string) ([]entity.Song, error) {
	out := []entity.Song{}
	for _, n := range names {
		if s, ok := r.songs[n]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishJSON(ctx context.Context, body any) error {
	args := m.Called(ctx, body)
	return args.Error(0)
}

type fakePhotoStore struct {
	objectPath  string
	contentType string
	body        []byte
	err         error
}

func (f *fakePhotoStore) Upload(_ context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.objectPath, f.contentType, f.body = objectPath, contentType, b
	return "https://storage.googleapis.com/bucket/" + objectPath, nil
}
