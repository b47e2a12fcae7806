package router

import (
	"time"

	"github.com/oksasatya/spotify-electron-api/internal/container"
	"github.com/oksasatya/spotify-electron-api/internal/interface/middleware"
	"github.com/oksasatya/spotify-electron-api/internal/router/modules"
)

// InitModules registers every feature module on the registry.
// Call it once at startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	r.Use(middleware.RateLimit(
		c.Redis,
		c.Config.RateLimitPerMinute,
		time.Minute,
		middleware.KeyByIPAndPath(),
		middleware.AllowPaths(r.Prefix+"/health"),
	))

	r.Add(modules.NewHealthModule(c.HealthHandler))
	r.Add(modules.NewUserModule(c.UserHandler))
	r.Add(modules.NewPlaylistModule(c.PlaylistHandler))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}
