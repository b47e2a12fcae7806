package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	repo "github.com/oksasatya/spotify-electron-api/internal/domain/repository"
	"github.com/oksasatya/spotify-electron-api/pkg/helpers"
)

type PlaylistService struct {
	Repo   repo.PlaylistRepository
	Songs  SongLookup
	Events EventPublisher
	Logger *logrus.Logger

	now func() time.Time
}

func NewPlaylistService(repo repo.PlaylistRepository, songs SongLookup, events EventPublisher, logger *logrus.Logger) *PlaylistService {
	return &PlaylistService{
		Repo:   repo,
		Songs:  songs,
		Events: events,
		Logger: logger,
		now:    time.Now,
	}
}

// GetPlaylist returns the playlist with every song resolved, in stored order.
// A single missing song fails the whole read.
func (s *PlaylistService) GetPlaylist(ctx context.Context, name string) (*entity.Playlist, error) {
	if !ValidName(name) {
		return nil, ErrInvalidArgument
	}
	rec, err := s.Repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	songs := make([]entity.Song, 0, len(rec.SongNames))
	for _, songName := range rec.SongNames {
		song, err := s.Songs.Get(ctx, songName)
		if err != nil {
			return nil, fmt.Errorf("playlist %s: %w", name, err)
		}
		songs = append(songs, *song)
	}
	return &entity.Playlist{
		Name:        rec.Name,
		Photo:       rec.Photo,
		Description: rec.Description,
		UploadDate:  helpers.DisplayDate(rec.UploadDate),
		Songs:       songs,
	}, nil
}

// CreatePlaylist checks that every song exists and stores songNames as given.
// Duplicates are kept here; only UpdatePlaylist collapses them.
func (s *PlaylistService) CreatePlaylist(ctx context.Context, name, photo, description string, songNames []string) (bool, error) {
	if !ValidName(name) {
		return false, ErrInvalidArgument
	}
	if _, err := s.Songs.GetMany(ctx, songNames); err != nil {
		return false, err
	}
	if songNames == nil {
		songNames = []string{}
	}
	rec := &entity.PlaylistRecord{
		Name:        name,
		Photo:       PermissivePhoto(photo),
		Description: description,
		UploadDate:  helpers.StoredDate(s.now()),
		SongNames:   songNames,
	}
	ok, err := s.Repo.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return false, ErrPlaylistAlreadyExists
		}
		return false, err
	}
	publish(ctx, s.Events, s.Logger, Event{Type: EventPlaylistCreated, Name: name})
	return ok, nil
}

// UpdatePlaylist overwrites photo, description and songs, renaming the
// playlist in the same write when newName is a valid name.
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, name, newName, photo, description string, songNames []string) error {
	if !ValidName(name) {
		return ErrInvalidArgument
	}
	target := name
	if ValidName(newName) {
		target = newName
	}
	rec := &entity.PlaylistRecord{
		Name:        target,
		Photo:       PermissivePhoto(photo),
		Description: description,
		SongNames:   Dedupe(songNames),
	}
	if err := s.Repo.Update(ctx, name, rec); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return ErrPlaylistNotFound
		case errors.Is(err, repo.ErrDuplicate):
			return ErrPlaylistAlreadyExists
		}
		return err
	}
	ev := Event{Type: EventPlaylistUpdated, Name: name}
	if target != name {
		ev.NewName = target
	}
	publish(ctx, s.Events, s.Logger, ev)
	return nil
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, name string) error {
	if !ValidName(name) {
		return ErrInvalidArgument
	}
	if err := s.Repo.Delete(ctx, name); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	publish(ctx, s.Events, s.Logger, Event{Type: EventPlaylistDeleted, Name: name})
	return nil
}

func (s *PlaylistService) GetAllPlaylists(ctx context.Context) ([]entity.PlaylistDTO, error) {
	records, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toPlaylistDTOs(records), nil
}

// GetSelectedPlaylists projects the playlists named in names. Unknown names are skipped.
func (s *PlaylistService) GetSelectedPlaylists(ctx context.Context, names []string) ([]entity.PlaylistDTO, error) {
	records, err := s.Repo.ListByNames(ctx, Dedupe(names))
	if err != nil {
		return nil, err
	}
	return toPlaylistDTOs(records), nil
}
