package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	repo "github.com/oksasatya/spotify-electron-api/internal/domain/repository"
	"github.com/oksasatya/spotify-electron-api/pkg/helpers"
)

// sniffLen is how much of an upload is buffered to detect its type.
const sniffLen = 3072

// PhotoStore is satisfied by helpers.GCSPhotoStore.
type PhotoStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

type UserService struct {
	Repo   repo.UserRepository
	Photos PhotoStore
	Events EventPublisher
	Logger *logrus.Logger

	now func() time.Time
}

func NewUserService(repo repo.UserRepository, photos PhotoStore, events EventPublisher, logger *logrus.Logger) *UserService {
	return &UserService{
		Repo:   repo,
		Photos: photos,
		Events: events,
		Logger: logger,
		now:    time.Now,
	}
}

// GetUser returns the user named name with its register date in display form.
func (s *UserService) GetUser(ctx context.Context, name string) (*entity.User, error) {
	if !ValidName(name) {
		return nil, ErrInvalidArgument
	}
	u, err := s.Repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.RegisterDate = helpers.DisplayDate(u.RegisterDate)
	return u, nil
}

// CreateUser stores a new user with empty lists and reports whether the
// store acknowledged the write. The unique index on name decides conflicts.
func (s *UserService) CreateUser(ctx context.Context, name, photo, password string) (bool, error) {
	if !ValidName(name) {
		return false, ErrInvalidArgument
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{
		Name:            name,
		Photo:           PermissivePhoto(photo),
		RegisterDate:    helpers.StoredDate(s.now()),
		Password:        hash,
		Playlists:       []string{},
		SavedPlaylists:  []string{},
		PlaybackHistory: []string{},
	}
	ok, err := s.Repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return false, ErrUserAlreadyExists
		}
		return false, err
	}
	publish(ctx, s.Events, s.Logger, Event{Type: EventUserCreated, Name: name})
	return ok, nil
}

// UpdateUser overwrites the photo and replaces the three lists with their
// distinct values. Prior contents are discarded, as is any ordering.
func (s *UserService) UpdateUser(ctx context.Context, name, photo string, playlists, savedPlaylists, playbackHistory []string) error {
	if !ValidName(name) {
		return ErrInvalidArgument
	}
	u := &entity.User{
		Name:            name,
		Photo:           PermissivePhoto(photo),
		Playlists:       Dedupe(playlists),
		SavedPlaylists:  Dedupe(savedPlaylists),
		PlaybackHistory: Dedupe(playbackHistory),
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	publish(ctx, s.Events, s.Logger, Event{Type: EventUserUpdated, Name: name})
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, name string) error {
	if !ValidName(name) {
		return ErrInvalidArgument
	}
	if err := s.Repo.Delete(ctx, name); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	publish(ctx, s.Events, s.Logger, Event{Type: EventUserDeleted, Name: name})
	return nil
}

// UploadPhoto stores an image as the user's photo and returns its URL.
func (s *UserService) UploadPhoto(ctx context.Context, name string, r io.Reader) (string, error) {
	if !ValidName(name) {
		return "", ErrInvalidArgument
	}
	if s.Photos == nil {
		return "", ErrPhotoStorageDisabled
	}
	if _, err := s.Repo.GetByName(ctx, name); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	mt := mimetype.Detect(head)
	if n == 0 || !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: photo must be an image, got %s", ErrInvalidArgument, mt.String())
	}

	objectPath := path.Join("photos", "users", url.PathEscape(name), uuid.NewString()+mt.Extension())
	link, err := s.Photos.Upload(ctx, objectPath, mt.String(), io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user", name).Error("photo upload failed")
		}
		return "", err
	}
	if err := s.Repo.SetPhoto(ctx, name, link); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	publish(ctx, s.Events, s.Logger, Event{Type: EventUserPhotoUpdated, Name: name})
	return link, nil
}
