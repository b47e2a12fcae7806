package repository

import (
	"context"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
)

// PlaylistRepository defines the interface for playlist persistence.
type PlaylistRepository interface {
	Create(ctx context.Context, p *entity.PlaylistRecord) (bool, error)
	GetByName(ctx context.Context, name string) (*entity.PlaylistRecord, error)
	// Update replaces the playlist stored under name with p; p.Name may differ to rename it.
	Update(ctx context.Context, name string, p *entity.PlaylistRecord) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]entity.PlaylistRecord, error)
	// ListByNames skips names that do not exist.
	ListByNames(ctx context.Context, names []string) ([]entity.PlaylistRecord, error)
}
