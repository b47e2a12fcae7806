package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	"github.com/oksasatya/spotify-electron-api/internal/domain/repository"
)

// Store keeps users, playlists and songs in process memory. It honours the
// same uniqueness rules as the mongo indexes and is meant for local runs and tests.
type Store struct {
	mu        sync.RWMutex
	users     map[string]entity.User
	playlists map[string]entity.PlaylistRecord
	songs     map[string]entity.Song
}

func NewStore() *Store {
	return &Store{
		users:     make(map[string]entity.User),
		playlists: make(map[string]entity.PlaylistRecord),
		songs:     make(map[string]entity.Song),
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Users() *UserRepository         { return &UserRepository{s: s} }
func (s *Store) Playlists() *PlaylistRepository { return &PlaylistRepository{s: s} }
func (s *Store) Songs() *SongRepository         { return &SongRepository{s: s} }

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u *entity.User) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.Name]; ok {
		return false, repository.ErrDuplicate
	}
	r.s.users[u.Name] = cloneUser(*u)
	return true, nil
}

func (r *UserRepository) GetByName(_ context.Context, name string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u = cloneUser(u)
	return &u, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[u.Name]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Photo = u.Photo
	cur.Playlists = u.Playlists
	cur.SavedPlaylists = u.SavedPlaylists
	cur.PlaybackHistory = u.PlaybackHistory
	r.s.users[u.Name] = cloneUser(cur)
	return nil
}

func (r *UserRepository) SetPhoto(_ context.Context, name, photo string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[name]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Photo = photo
	r.s.users[name] = cur
	return nil
}

func (r *UserRepository) Delete(_ context.Context, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[name]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, name)
	return nil
}

type PlaylistRepository struct{ s *Store }

func (r *PlaylistRepository) Create(_ context.Context, p *entity.PlaylistRecord) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.playlists[p.Name]; ok {
		return false, repository.ErrDuplicate
	}
	r.s.playlists[p.Name] = clonePlaylist(*p)
	return true, nil
}

func (r *PlaylistRepository) GetByName(_ context.Context, name string) (*entity.PlaylistRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.playlists[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p = clonePlaylist(p)
	return &p, nil
}

func (r *PlaylistRepository) Update(_ context.Context, name string, p *entity.PlaylistRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.playlists[name]
	if !ok {
		return repository.ErrNotFound
	}
	if p.Name != name {
		if _, taken := r.s.playlists[p.Name]; taken {
			return repository.ErrDuplicate
		}
	}
	cur.Name = p.Name
	cur.Photo = p.Photo
	cur.Description = p.Description
	cur.SongNames = p.SongNames
	delete(r.s.playlists, name)
	r.s.playlists[p.Name] = clonePlaylist(cur)
	return nil
}

func (r *PlaylistRepository) Delete(_ context.Context, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.playlists[name]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.playlists, name)
	return nil
}

func (r *PlaylistRepository) List(_ context.Context) ([]entity.PlaylistRecord, error) {
	return r.collect(func(string) bool { return true }), nil
}

func (r *PlaylistRepository) ListByNames(_ context.Context, names []string) ([]entity.PlaylistRecord, error) {
	return r.collect(func(n string) bool { return slices.Contains(names, n) }), nil
}

func (r *PlaylistRepository) collect(keep func(name string) bool) []entity.PlaylistRecord {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.PlaylistRecord, 0, len(r.s.playlists))
	for name, p := range r.s.playlists {
		if keep(name) {
			out = append(out, clonePlaylist(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

type SongRepository struct{ s *Store }

func (r *SongRepository) GetByName(_ context.Context, name string) (*entity.Song, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	song, ok := r.s.songs[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &song, nil
}

func (r *SongRepository) GetByNames(_ context.Context, names []string) ([]entity.Song, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Song, 0, len(names))
	for _, n := range names {
		if song, ok := r.s.songs[n]; ok {
			out = append(out, song)
		}
	}
	return out, nil
}

func (r *SongRepository) Upsert(_ context.Context, song entity.Song) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.songs[song.Name] = song
	return nil
}

func cloneUser(u entity.User) entity.User {
	u.Playlists = slices.Clone(u.Playlists)
	u.SavedPlaylists = slices.Clone(u.SavedPlaylists)
	u.PlaybackHistory = slices.Clone(u.PlaybackHistory)
	return u
}

func clonePlaylist(p entity.PlaylistRecord) entity.PlaylistRecord {
	p.SongNames = slices.Clone(p.SongNames)
	return p
}

var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.PlaylistRepository = (*PlaylistRepository)(nil)
	_ repository.SongRepository     = (*SongRepository)(nil)
)
