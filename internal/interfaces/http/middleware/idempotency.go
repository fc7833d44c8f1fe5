package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"servicehub.backend/pkg/redis"
)

// IdempotencyKeyHeader carries the client-chosen key for retry-safe
// mutations.
const IdempotencyKeyHeader = "Idempotency-Key"

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware makes mutating endpoints retry-safe. The first
// request holding a key runs normally and its response is recorded; a
// replay with the same key gets that response back without re-running
// the handler. Requests without the header pass through untouched.
func IdempotencyMiddleware(store *redis.IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		claimed, err := store.Claim(ctx, key)
		if err != nil {
			// redis being down should not block payments
			c.Next()
			return
		}
		if !claimed {
			result, err := store.GetResult(ctx, key)
			if err == nil && result != "" {
				c.Data(http.StatusOK, "application/json", []byte(result))
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"message": "request with this idempotency key is already in flight",
			})
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			// failed attempts release the key so the client can retry
			_ = store.Release(ctx, key)
			return
		}
		_ = store.StoreResult(ctx, key, recorder.body.Bytes())
	}
}
