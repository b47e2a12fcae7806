package helpers

import (
	"strings"
	"time"
)

// StoredDateLayout is ISO-8601 with seconds precision and an explicit UTC marker.
const StoredDateLayout = "2006-01-02T15:04:05Z"

// StoredDate formats t the way dates are persisted.
func StoredDate(t time.Time) string {
	return t.UTC().Format(StoredDateLayout)
}

// DisplayDate drops the trailing UTC marker of a persisted date.
// Values written without the marker are returned unchanged.
func DisplayDate(stored string) string {
	return strings.TrimSuffix(stored, "Z")
}
