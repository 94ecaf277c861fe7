package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rioharsa/storefront-gateway/internal/service"
	"github.com/rioharsa/storefront-gateway/internal/session"
)

// SessionHeader carries the browse session ID. The gateway echoes it on
// every response so the client can pick it up after the first request.
const SessionHeader = "X-Browse-Session"

const sessionContextKey = "browseSession"

// BrowseSession attaches the caller's browse session to the echo context,
// creating one when the header is missing or names an expired session. A
// bearer token presented alongside a fresh session is a persisted credential
// from an earlier visit: the session starts in Resolving and validation runs
// in the background.
func BrowseSession(store *session.Store, users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(SessionHeader)

			sess, ok := store.Get(id)
			if !ok {
				sess = store.Create()

				auth := c.Request().Header.Get(echo.HeaderAuthorization)
				if token, found := strings.CutPrefix(auth, "Bearer "); found && token != "" {
					sess.SetResolving(token)
					go users.ResolveSession(sess)
				}
			}

			c.Response().Header().Set(SessionHeader, sess.ID)
			c.Set(sessionContextKey, sess)

			return next(c)
		}
	}
}

func GetBrowseSession(c echo.Context) *session.Browse {
	sess, _ := c.Get(sessionContextKey).(*session.Browse)
	return sess
}
