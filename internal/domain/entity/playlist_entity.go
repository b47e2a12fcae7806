package entity

// Playlist is a named list of songs with its songs resolved.
type Playlist struct {
	Name        string `json:"name"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
	UploadDate  string `json:"upload_date"`
	Songs       []Song `json:"songs"`
}

// PlaylistRecord is a playlist as persisted, referencing songs by name.
type PlaylistRecord struct {
	Name        string
	Photo       string
	Description string
	UploadDate  string
	SongNames   []string
}

// PlaylistDTO is the list-view projection of a playlist.
type PlaylistDTO struct {
	Name        string   `json:"name"`
	Photo       string   `json:"photo"`
	Description string   `json:"description"`
	UploadDate  string   `json:"upload_date"`
	SongNames   []string `json:"song_names"`
}
