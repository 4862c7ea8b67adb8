package handlers

import (
	"errors"
	"net/http"

	"github.com/math490/ProjetoTarefas-3B/internal/flash"
	"github.com/math490/ProjetoTarefas-3B/internal/services"
	"github.com/math490/ProjetoTarefas-3B/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db          *gorm.DB
	authService services.AuthService
	sessions    *session.Manager
	cookieName  string
	log         *logrus.Logger
}

func NewAuthHandler(db *gorm.DB, authService services.AuthService, sessions *session.Manager, cookieName string, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		db:          db,
		authService: authService,
		sessions:    sessions,
		cookieName:  cookieName,
		log:         log,
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Notice": flash.Pop(c),
	})
}

// Login handles the credential form. Failure re-renders the form in place
// instead of redirecting, and never says whether the email exists.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.LoginUser(h.db, email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Notice": &flash.Notice{Category: "danger", Message: "E-mail ou senha inválidos"},
				"Email":  email,
			})
			return
		}
		h.log.WithError(err).Error("login failed")
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	token, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		h.log.WithError(err).Error("session issue failed")
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	c.SetCookie(h.cookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/tasks")
}
