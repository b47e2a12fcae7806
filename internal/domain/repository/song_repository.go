package repository

import (
	"context"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
)

// SongRepository is a read-only view over the song collection.
type SongRepository interface {
	GetByName(ctx context.Context, name string) (*entity.Song, error)
	GetByNames(ctx context.Context, names []string) ([]entity.Song, error)
}
