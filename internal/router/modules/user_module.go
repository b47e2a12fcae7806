package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/spotify-electron-api/internal/interface/http"
)

// UserModule serves the user CRUD routes under /usuarios.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/usuarios")
	{
		g.POST("/", m.Handler.Create)
		g.GET("/:nombre", m.Handler.Get)
		g.PUT("/:nombre", m.Handler.Update)
		// existing clients send the update with a trailing slash
		g.PUT("/:nombre/", m.Handler.Update)
		g.DELETE("/:nombre", m.Handler.Delete)
		g.POST("/:nombre/foto", m.Handler.UploadPhoto)
	}
}
