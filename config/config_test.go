package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("API_PREFIX", "")
	t.Setenv("DEBUG_METRICS_ENABLED", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "", cfg.APIPrefix)
	assert.Equal(t, 10*time.Second, cfg.MongoConnectTimeout)
	assert.False(t, cfg.EventsEnabled)
	assert.Equal(t, "mongo", cfg.StorageDriver)
	assert.False(t, cfg.DebugMetricsEnabled)
	assert.Empty(t, cfg.TrustedProxyList())
}

func TestLoadOverridesAndFallbacks(t *testing.T) {
	t.Setenv("API_PREFIX", "/api/")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "3s")
	t.Setenv("EVENTS_ENABLED", "true")
	t.Setenv("STORAGE_DRIVER", "Memory")

	cfg := Load()

	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 3*time.Second, cfg.MongoConnectTimeout)
	assert.True(t, cfg.EventsEnabled)
	assert.Equal(t, "memory", cfg.StorageDriver)
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://a.test, ,http://b.test "}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}

func TestTrustedProxyList(t *testing.T) {
	cfg := &Config{TrustedProxies: "10.0.0.0/8, 192.168.1.2,"}
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.2"}, cfg.TrustedProxyList())
}
