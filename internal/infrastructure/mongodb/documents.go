package mongodb

import (
	"errors"
	"fmt"

	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
)

var errInvalidDocument = errors.New("invalid document")

type userDocument struct {
	Name            string   `bson:"name"`
	Photo           string   `bson:"photo"`
	RegisterDate    string   `bson:"register_date"`
	Password        string   `bson:"password"`
	Playlists       []string `bson:"playlists"`
	SavedPlaylists  []string `bson:"saved_playlists"`
	PlaybackHistory []string `bson:"playback_history"`
}

func newUserDocument(u *entity.User) userDocument {
	return userDocument{
		Name:            u.Name,
		Photo:           u.Photo,
		RegisterDate:    u.RegisterDate,
		Password:        u.Password,
		Playlists:       nonNil(u.Playlists),
		SavedPlaylists:  nonNil(u.SavedPlaylists),
		PlaybackHistory: nonNil(u.PlaybackHistory),
	}
}

func (d userDocument) toEntity() (*entity.User, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: user without name", errInvalidDocument)
	}
	return &entity.User{
		Name:            d.Name,
		Photo:           d.Photo,
		RegisterDate:    d.RegisterDate,
		Password:        d.Password,
		Playlists:       nonNil(d.Playlists),
		SavedPlaylists:  nonNil(d.SavedPlaylists),
		PlaybackHistory: nonNil(d.PlaybackHistory),
	}, nil
}

type playlistDocument struct {
	Name        string   `bson:"name"`
	Photo       string   `bson:"photo"`
	Description string   `bson:"description"`
	UploadDate  string   `bson:"upload_date"`
	SongNames   []string `bson:"song_names"`
}

func newPlaylistDocument(p *entity.PlaylistRecord) playlistDocument {
	return playlistDocument{
		Name:        p.Name,
		Photo:       p.Photo,
		Description: p.Description,
		UploadDate:  p.UploadDate,
		SongNames:   nonNil(p.SongNames),
	}
}

func (d playlistDocument) toEntity() (*entity.PlaylistRecord, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: playlist without name", errInvalidDocument)
	}
	return &entity.PlaylistRecord{
		Name:        d.Name,
		Photo:       d.Photo,
		Description: d.Description,
		UploadDate:  d.UploadDate,
		SongNames:   nonNil(d.SongNames),
	}, nil
}

type songDocument struct {
	Name          string `bson:"name"`
	Artist        string `bson:"artist"`
	Photo         string `bson:"photo"`
	Duration      int    `bson:"duration"`
	Genre         string `bson:"genre"`
	NumberOfPlays int    `bson:"number_of_plays"`
}

func (d songDocument) toEntity() (*entity.Song, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: song without name", errInvalidDocument)
	}
	return &entity.Song{
		Name:          d.Name,
		Artist:        d.Artist,
		Photo:         d.Photo,
		Duration:      d.Duration,
		Genre:         d.Genre,
		NumberOfPlays: d.NumberOfPlays,
	}, nil
}

// nonNil keeps empty lists encoded as [] instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
