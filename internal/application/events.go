package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	EventUserCreated      = "user.created"
	EventUserUpdated      = "user.updated"
	EventUserPhotoUpdated = "user.photo_updated"
	EventUserDeleted      = "user.deleted"

	EventPlaylistCreated = "playlist.created"
	EventPlaylistUpdated = "playlist.updated"
	EventPlaylistDeleted = "playlist.deleted"
)

// Event describes a completed write. Events are informational: consumers
// must tolerate loss since publishing never fails the write.
type Event struct {
	Type    string    `json:"type"`
	Name    string    `json:"name"`
	NewName string    `json:"new_name,omitempty"`
	At      time.Time `json:"at"`
}

// EventPublisher is satisfied by helpers.RabbitPublisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

func publish(ctx context.Context, pub EventPublisher, logger *logrus.Logger, ev Event) {
	if pub == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := pub.PublishJSON(c, ev); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{"type": ev.Type, "name": ev.Name}).Warn("event publish failed")
	}
}
