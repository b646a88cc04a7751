package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// untrackedPrefixes are served without a request log line.
var untrackedPrefixes = []string{"/static/", "/images/", "/favicon", "/healthz"}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate ip salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP returns a salted, truncated digest so raw client addresses never
// reach the logs. The salt is per process.
func (s *Server) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger logs one line per page request. Visitors sending DNT are
// logged without an address hash.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", c.GetString(requestIDHeader)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Bool("htmx", c.GetHeader("HX-Request") == "true"),
		}
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, zap.String("visitor", s.hashIP(c.ClientIP())))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		s.deps.Logger.Info("request", fields...)
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		s.deps.Logger.Error("panic serving request",
			zap.String("request_id", c.GetString(requestIDHeader)),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", err),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
