package router

import "github.com/gin-gonic/gin"

// Module registers one resource's routes (users, playlists, ops) on the
// registry's group. Modules receive their handlers at construction.
type Module interface {
	Register(rg *gin.RouterGroup)
}
