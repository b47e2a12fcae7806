package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/spotify-electron-api/internal/interface/http"
)

type PlaylistModule struct {
	Handler *handlers.PlaylistHandler
}

func NewPlaylistModule(h *handlers.PlaylistHandler) *PlaylistModule {
	return &PlaylistModule{Handler: h}
}

func (m *PlaylistModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/playlists")
	{
		g.GET("/", m.Handler.List)
		g.POST("/", m.Handler.Create)
		g.GET("/multiple/:nombres", m.Handler.Selected)
		g.GET("/:nombre", m.Handler.Get)
		g.PUT("/:nombre", m.Handler.Update)
		g.DELETE("/:nombre", m.Handler.Delete)
	}
}
