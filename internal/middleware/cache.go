package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/packworks/coursecat-backend/internal/config"
)

// CacheControl sets the Cache-Control header for responses.
func CacheControl(maxAgeSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAgeSeconds))
		c.Next()
	}
}

type cachedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachedWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *cachedWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// BrowseCache serves successful GET responses from Redis, keyed by the
// full request URI. The catalog only changes on (re-)ingestion, so a
// short TTL is enough to absorb browse traffic. Redis being down
// degrades to uncached serving, never to an error.
func BrowseCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("component", "browse_cache").Logger()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := config.CacheKey.BrowseResponseKey(c.Request.RequestURI)
		if cached, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		} else if err != redis.Nil {
			log.Warn().Err(err).Msg("Browse cache read failed")
		}

		writer := &cachedWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Header("X-Cache", "MISS")
		c.Next()

		if c.Writer.Status() != http.StatusOK || writer.body.Len() == 0 {
			return
		}
		if err := rdb.Set(c.Request.Context(), key, writer.body.Bytes(), ttl).Err(); err != nil {
			log.Warn().Err(err).Msg("Browse cache write failed")
		}
	}
}
