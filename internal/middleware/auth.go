package middleware

import (
	"errors"
	"net/http"

	"github.com/math490/ProjetoTarefas-3B/internal/services"
	"github.com/math490/ProjetoTarefas-3B/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ContextUserKey   = "current_user"
	ContextUserIDKey = "user_id"
)

// LoginRequired resolves the session cookie to a user and stores it in the
// request context. Anonymous requests are redirected to the login page
// before the handler or any store operation runs. Only a missing or invalid
// session redirects; a failing session store or database surfaces as a
// server error so a transient outage doesn't log everyone out.
func LoginRequired(db *gorm.DB, manager *session.Manager, users services.UserService, cookieName string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		userID, err := manager.Resolve(c.Request.Context(), tokenStr)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				log.WithError(err).Error("session resolve failed")
				c.String(http.StatusInternalServerError, "erro interno")
				c.Abort()
				return
			}
			// Stale cookie, signature failure or revoked session all
			// land here; drop the cookie and start over.
			c.SetCookie(cookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		user, err := users.FindByID(db, userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.WithError(err).Error("session user lookup failed")
				c.String(http.StatusInternalServerError, "erro interno")
				c.Abort()
				return
			}
			c.SetCookie(cookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}
