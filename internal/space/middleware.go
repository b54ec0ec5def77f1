package space

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"metaspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

const payloadKey = "space_payload"

// ValidatePayload pre-validates the space-creation body before the handler
// runs: content type, JSON shape, and dimension bounds. On success the parsed
// envelope is attached to the gin context and the consumed body is re-attached
// so downstream body readers still work.
//
// TODO: no body size cap is enforced here; add one once ingress limits are
// settled.
func ValidatePayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromGin(c)

		ct := c.GetHeader("Content-Type")
		if i := strings.IndexByte(ct, ';'); i >= 0 {
			ct = ct[:i]
		}
		if !strings.EqualFold(strings.TrimSpace(ct), "application/json") {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "content type must be application/json"})
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			log.Error("body read failed", "err", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var payload CreatePayload
		if err := json.Unmarshal(body, &payload); err != nil {
			log.Error("payload parse failed", "err", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}

		if payload.Width < MinDimension || payload.Width > MaxDimension {
			log.Error("width out of range", "width", payload.Width)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "width out of range"})
			return
		}
		if payload.Height != nil && (*payload.Height < MinDimension || *payload.Height > MaxDimension) {
			log.Error("height out of range", "height", *payload.Height)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "height out of range"})
			return
		}

		c.Set(payloadKey, payload)
		c.Next()
	}
}

// PayloadFrom returns the envelope attached by ValidatePayload.
func PayloadFrom(c *gin.Context) (CreatePayload, bool) {
	v, ok := c.Get(payloadKey)
	if !ok {
		return CreatePayload{}, false
	}
	p, ok := v.(CreatePayload)
	return p, ok
}
