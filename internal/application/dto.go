package application

import (
	"github.com/oksasatya/spotify-electron-api/internal/domain/entity"
	"github.com/oksasatya/spotify-electron-api/pkg/helpers"
)

// ToPlaylistDTO projects a stored playlist for list views; songs stay unresolved.
func ToPlaylistDTO(p entity.PlaylistRecord) entity.PlaylistDTO {
	songNames := p.SongNames
	if songNames == nil {
		songNames = []string{}
	}
	return entity.PlaylistDTO{
		Name:        p.Name,
		Photo:       p.Photo,
		Description: p.Description,
		UploadDate:  helpers.DisplayDate(p.UploadDate),
		SongNames:   songNames,
	}
}

func toPlaylistDTOs(records []entity.PlaylistRecord) []entity.PlaylistDTO {
	out := make([]entity.PlaylistDTO, 0, len(records))
	for _, r := range records {
		out = append(out, ToPlaylistDTO(r))
	}
	return out
}
