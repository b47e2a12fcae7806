package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/spotify-electron-api/internal/application"
	"github.com/oksasatya/spotify-electron-api/pkg/response"
)

// statusFor maps service errors to HTTP statuses. An existing name is a
// 400, not a 409, to stay compatible with existing clients.
func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrInvalidArgument),
		errors.Is(err, app.ErrUserAlreadyExists),
		errors.Is(err, app.ErrPlaylistAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrUserNotFound),
		errors.Is(err, app.ErrPlaylistNotFound),
		errors.Is(err, app.ErrSongNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrPhotoStorageDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.FullPath(),
			}).Error("request failed")
		}
		response.Error[any](c, status, "internal server error", nil)
		return
	}
	response.Error[any](c, status, err.Error(), nil)
}
