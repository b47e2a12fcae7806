package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/spotify-electron-api/internal/application"
	"github.com/oksasatya/spotify-electron-api/pkg/response"
	"github.com/oksasatya/spotify-electron-api/pkg/validation"
)

type UserHandler struct {
	Svc           *app.UserService
	Logger        *logrus.Logger
	MaxPhotoBytes int64
}

func NewUserHandler(svc *app.UserService, logger *logrus.Logger, maxPhotoBytes int64) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, MaxPhotoBytes: maxPhotoBytes}
}

type updateUserRequest struct {
	PlaybackHistory []string `json:"historial_canciones"`
	Playlists       []string `json:"playlists"`
	SavedPlaylists  []string `json:"playlists_guardadas"`
}

// Get GET /usuarios/:nombre
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), c.Param("nombre"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

// Create POST /usuarios/?nombre=&foto=&password=
func (h *UserHandler) Create(c *gin.Context) {
	ok, err := h.Svc.CreateUser(c.Request.Context(), c.Query("nombre"), c.Query("foto"), c.Query("password"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"name": c.Query("nombre"), "acknowledged": ok}, "user created", nil)
}

// Update PUT /usuarios/:nombre?foto=
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	name := c.Param("nombre")
	if err := h.Svc.UpdateUser(c.Request.Context(), name, c.Query("foto"), req.Playlists, req.SavedPlaylists, req.PlaybackHistory); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"name": name}, "user updated", nil)
}

// Delete DELETE /usuarios/:nombre
func (h *UserHandler) Delete(c *gin.Context) {
	name := c.Param("nombre")
	if err := h.Svc.DeleteUser(c.Request.Context(), name); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"name": name}, "user deleted", nil)
}

// UploadPhoto POST /usuarios/:nombre/foto (multipart, field "file")
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	if h.MaxPhotoBytes > 0 {
		if c.Request.ContentLength > h.MaxPhotoBytes {
			h.photoTooLarge(c)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxPhotoBytes)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.photoTooLarge(c)
			return
		}
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"file": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"file": "cannot be read"})
		return
	}
	defer func() { _ = f.Close() }()

	link, err := h.Svc.UploadPhoto(c.Request.Context(), c.Param("nombre"), f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"photo": link}, "photo updated", nil)
}

func (h *UserHandler) photoTooLarge(c *gin.Context) {
	response.Error[any](c, http.StatusRequestEntityTooLarge, "photo too large",
		map[string]string{"file": fmt.Sprintf("must be at most %d bytes", h.MaxPhotoBytes)})
}
