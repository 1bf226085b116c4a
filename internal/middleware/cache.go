package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/tedjkamau/BFI/internal/config"
)

// captureWriter captures the response body and status while forwarding to
// the client, so a successful response can be stored after the fact.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if remain := cw.limit - cw.size; remain > 0 {
		if int64(len(b)) <= remain {
			cw.buf.Write(b)
		} else {
			cw.buf.Write(b[:remain])
		}
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

// cacheKey hashes method, request path and query under the configured
// prefix.  The concrete URL path is used, not the registered route: path
// parameters (year, week, title) carry the identity of every scrape-backed
// route, and keying on the route template would serve one weekend's cached
// body for every other weekend.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	r := c.Request()
	sum := sha1.Sum([]byte(r.Method + ":" + r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// encodeEntry packs [4 bytes status][content type][0x00][body].
func encodeEntry(status int, contentType string, body []byte) []byte {
	out := make([]byte, 0, 4+len(contentType)+1+len(body))
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(status))
	out = append(out, hdr[:]...)
	out = append(out, contentType...)
	out = append(out, 0)
	out = append(out, body...)
	return out
}

func decodeEntry(bs []byte) (status int, contentType string, body []byte, ok bool) {
	if len(bs) < 5 {
		return 0, "", nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[:4]))
	rest := bs[4:]
	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		return 0, "", nil, false
	}
	return status, string(rest[:i]), rest[i+1:], true
}

// NewRedisCache caches successful responses of the scrape-backed routes.
// Every miss fans out into real requests against the ranking and metadata
// sources, so even a short TTL removes the bulk of the upstream load.  A
// nil Redis client disables the middleware entirely.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	maxBody := int64(cfg.MaxBodyBytes)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg, c)

			if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
				if status, contentType, body, ok := decodeEntry(bs); ok {
					if contentType != "" {
						c.Response().Header().Set(echo.HeaderContentType, contentType)
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(status)
					_, _ = c.Response().Write(body)
					return nil
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			// Only complete 200 responses are stored; a truncated body
			// (size past the limit) is skipped rather than served short.
			if cw.status == http.StatusOK && cw.size <= maxBody {
				entry := encodeEntry(cw.status, c.Response().Header().Get(echo.HeaderContentType), cw.buf.Bytes())
				_ = rdb.SetEx(context.Background(), key, entry, ttl).Err()
			}
			return nil
		}
	}
}
