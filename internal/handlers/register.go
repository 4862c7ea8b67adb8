package handlers

import (
	"errors"
	"net/http"

	"github.com/math490/ProjetoTarefas-3B/internal/flash"
	"github.com/math490/ProjetoTarefas-3B/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RegisterHandler struct {
	db    *gorm.DB
	users services.UserService
	log   *logrus.Logger
}

func NewRegisterHandler(db *gorm.DB, users services.UserService, log *logrus.Logger) *RegisterHandler {
	return &RegisterHandler{db: db, users: users, log: log}
}

func (h *RegisterHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Notice": flash.Pop(c),
	})
}

func (h *RegisterHandler) Register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		flash.Redirect(c, "/register", "danger", "Preencha e-mail e senha")
		return
	}

	_, err := h.users.Register(h.db, name, email, password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			flash.Redirect(c, "/register", "danger", "E-mail já cadastrado")
			return
		}
		h.log.WithError(err).Error("registration failed")
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	flash.Redirect(c, "/login", "success", "Cadastro realizado, faça login")
}
