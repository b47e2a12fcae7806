package application

import "errors"

var (
	ErrInvalidArgument       = errors.New("invalid parameters")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrPlaylistNotFound      = errors.New("playlist not found")
	ErrPlaylistAlreadyExists = errors.New("playlist already exists")
	ErrSongNotFound          = errors.New("song not found")
	ErrPhotoStorageDisabled  = errors.New("photo storage not configured")
)
