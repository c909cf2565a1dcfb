package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// DefaultActor is recorded when a request carries no identity header.
const DefaultActor = "system"

// ActorIdentity extracts the acting identity from the X-Actor header and
// stores it on the request context. An authenticating proxy is expected to
// set the header; without one every write is attributed to the default actor.
func ActorIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader("X-Actor"))
		if actor == "" {
			actor = DefaultActor
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// Actor returns the identity stored by ActorIdentity, defaulting when the
// middleware did not run.
func Actor(c *gin.Context) string {
	if actor := c.GetString(actorKey); actor != "" {
		return actor
	}
	return DefaultActor
}
