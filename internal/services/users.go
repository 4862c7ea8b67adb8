package services

import (
	"errors"
	"strings"

	"github.com/math490/ProjetoTarefas-3B/internal/models"

	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already registered")

type UserService interface {
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	Register(db *gorm.DB, name, email, password string) (*models.User, error)
}

type UserServiceImpl struct {
	bcryptCost int
}

func NewUserService(bcryptCost int) *UserServiceImpl {
	return &UserServiceImpl{bcryptCost: bcryptCost}
}

func (s *UserServiceImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserServiceImpl) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account with a hashed password. The lookup is an
// advisory fast path; the unique index on email is what makes concurrent
// duplicate submissions safe.
func (s *UserServiceImpl) Register(db *gorm.DB, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.FindByEmail(db, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}
