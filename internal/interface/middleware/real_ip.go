package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TrustProxies restricts which peers may set forwarding headers. With no
// proxies and no platform, forwarding headers are ignored and the socket
// peer is the client. platform "cloudflare" reads CF-Connecting-IP,
// "google" reads X-Appengine-Remote-Addr.
func TrustProxies(engine *gin.Engine, proxies []string, platform string) error {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "":
		engine.TrustedPlatform = ""
	case "cloudflare":
		engine.TrustedPlatform = gin.PlatformCloudflare
	case "google":
		engine.TrustedPlatform = gin.PlatformGoogleAppEngine
	default:
		engine.TrustedPlatform = platform
	}
	if len(proxies) == 0 {
		return engine.SetTrustedProxies(nil)
	}
	return engine.SetTrustedProxies(proxies)
}

// RealIP stores the client IP resolved by gin under "real_ip". Forwarding
// headers count only when the engine trusts the peer (see TrustProxies).
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", c.ClientIP())
		c.Next()
	}
}

// ipFromCtx extracts the client IP from Gin context, falling back to "unknown"
func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
