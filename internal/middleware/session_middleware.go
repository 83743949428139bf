package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/session"
)

// SessionHeader carries the session id on every record and projection call.
const SessionHeader = "X-Session-ID"

// sessionIDKey is the gin context key the session id is stored under.
const sessionIDKey = "sessionID"

// SessionMiddleware resolves the session id header against the store
type SessionMiddleware struct {
	store *session.Store
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(store *session.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// RequireSession validates the X-Session-ID header, refreshes the session's
// idle timer and stores the id in the request context.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Session required").
				WithField(SessionHeader).
				WithDetails(SessionHeader + " header missing")

			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := m.store.Touch(id); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Session not found")
			errorDetail = errorDetail.WithDetails("Unknown or expired session id")

			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// SessionID returns the session id stored by RequireSession.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
