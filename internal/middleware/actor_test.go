package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestActorIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ActorIdentity())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, Actor(c))
	})

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"header present", "alice", "alice"},
		{"header padded", "  bob  ", "bob"},
		{"header absent", "", "system"},
		{"header blank", "   ", "system"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("X-Actor", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}
