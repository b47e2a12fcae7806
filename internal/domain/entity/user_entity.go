package entity

// User is the aggregate root for the user domain.
// Name is the primary key and never changes after creation.
//
// The list fields behave as sets: updates store them deduplicated.
type User struct {
	Name            string   `json:"name"`
	Photo           string   `json:"photo"`
	RegisterDate    string   `json:"register_date"`
	Password        string   `json:"-"`
	Playlists       []string `json:"playlists"`
	SavedPlaylists  []string `json:"saved_playlists"`
	PlaybackHistory []string `json:"playback_history"`
}
