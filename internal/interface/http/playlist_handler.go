package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/spotify-electron-api/internal/application"
	"github.com/oksasatya/spotify-electron-api/pkg/response"
	"github.com/oksasatya/spotify-electron-api/pkg/validation"
)

type PlaylistHandler struct {
	Svc    *app.PlaylistService
	Logger *logrus.Logger
}

func NewPlaylistHandler(svc *app.PlaylistService, logger *logrus.Logger) *PlaylistHandler {
	return &PlaylistHandler{Svc: svc, Logger: logger}
}

// List GET /playlists/
func (h *PlaylistHandler) List(c *gin.Context) {
	out, err := h.Svc.GetAllPlaylists(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, out, "playlists", map[string]any{"count": len(out)})
}

// Get GET /playlists/:nombre
func (h *PlaylistHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetPlaylist(c.Request.Context(), c.Param("nombre"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "playlist", nil)
}

// Selected GET /playlists/multiple/:nombres with comma separated names
func (h *PlaylistHandler) Selected(c *gin.Context) {
	out, err := h.Svc.GetSelectedPlaylists(c.Request.Context(), splitNames(c.Param("nombres")))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, out, "playlists", map[string]any{"count": len(out)})
}

// Create POST /playlists/?nombre=&foto=&descripcion= with a JSON array of song names
func (h *PlaylistHandler) Create(c *gin.Context) {
	var songNames []string
	if err := c.ShouldBindJSON(&songNames); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	name := c.Query("nombre")
	ok, err := h.Svc.CreatePlaylist(c.Request.Context(), name, c.Query("foto"), c.Query("descripcion"), songNames)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"name": name, "acknowledged": ok}, "playlist created", nil)
}

// Update PUT /playlists/:nombre?nuevo_nombre=&foto=&descripcion= with a JSON array of song names
func (h *PlaylistHandler) Update(c *gin.Context) {
	var songNames []string
	if err := c.ShouldBindJSON(&songNames); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	name := c.Param("nombre")
	err := h.Svc.UpdatePlaylist(c.Request.Context(), name, c.Query("nuevo_nombre"), c.Query("foto"), c.Query("descripcion"), songNames)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"name": name}, "playlist updated", nil)
}

// Delete DELETE /playlists/:nombre
func (h *PlaylistHandler) Delete(c *gin.Context) {
	name := c.Param("nombre")
	if err := h.Svc.DeletePlaylist(c.Request.Context(), name); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"name": name}, "playlist deleted", nil)
}

func splitNames(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
