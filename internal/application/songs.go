package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	repo "github.com/oksasatya/spotify-electron-api/internal/domain/repository"
)

// SongLookup resolves song names into songs.
type SongLookup interface {
	Get(ctx context.Context, name string) (*entity.Song, error)
	// GetMany fails with ErrSongNotFound if any name is unknown.
	GetMany(ctx context.Context, names []string) ([]entity.Song, error)
}

type SongCatalog struct {
	Repo repo.SongRepository
}

func NewSongCatalog(repo repo.SongRepository) *SongCatalog {
	return &SongCatalog{Repo: repo}
}

func (c *SongCatalog) Get(ctx context.Context, name string) (*entity.Song, error) {
	s, err := c.Repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSongNotFound, name)
		}
		return nil, err
	}
	return s, nil
}

// GetMany returns songs in the order of names, duplicates included.
func (c *SongCatalog) GetMany(ctx context.Context, names []string) ([]entity.Song, error) {
	found, err := c.Repo.GetByNames(ctx, Dedupe(names))
	if err != nil {
		return nil, err
	}
	byName := make(map[string]entity.Song, len(found))
	for _, s := range found {
		byName[s.Name] = s
	}
	out := make([]entity.Song, 0, len(names))
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSongNotFound, n)
		}
		out = append(out, s)
	}
	return out, nil
}

var _ SongLookup = (*SongCatalog)(nil)
