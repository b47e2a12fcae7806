package entity

// Song is read-only from this service's point of view.
type Song struct {
	Name          string `json:"name"`
	Artist        string `json:"artist"`
	Photo         string `json:"photo"`
	Duration      int    `json:"duration"`
	Genre         string `json:"genre"`
	NumberOfPlays int    `json:"number_of_plays"`
}
