package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/app/repositories"
	"github.com/shashiranjanraj/tokoku/pkg/auth"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService verifies admin/staff credentials and issues tokens.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login checks the stored bcrypt hash and returns a signed JWT. Unknown
// usernames and wrong passwords report the same error so the endpoint
// leaks nothing about which accounts exist.
func (s *AuthService) Login(username, password string) (string, models.User, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.User{}, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}
