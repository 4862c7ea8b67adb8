package handlers

import (
	"net/http"

	"github.com/math490/ProjetoTarefas-3B/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type LogoutHandler struct {
	sessions   *session.Manager
	cookieName string
	log        *logrus.Logger
}

func NewLogoutHandler(sessions *session.Manager, cookieName string, log *logrus.Logger) *LogoutHandler {
	return &LogoutHandler{sessions: sessions, cookieName: cookieName, log: log}
}

// Logout revokes the session server-side and drops the cookie, so a
// replayed cookie no longer resolves. A failed revocation is a server
// error; clearing only the cookie would leave the session live.
func (h *LogoutHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil {
		if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
			h.log.WithError(err).Error("session revoke failed")
			c.String(http.StatusInternalServerError, "erro interno")
			return
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
