package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/app/repositories"
	"github.com/shashiranjanraj/tokoku/pkg/auth"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUser   = errors.New("username and password are required")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserInput carries admin-submitted account fields. Password is optional
// on update.
type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserService manages admin/staff accounts.
type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all accounts, newest first.
func (s *UserService) List() ([]models.User, error) {
	return s.users.All()
}

// Create stores a new account with a bcrypt-hashed password.
func (s *UserService) Create(in UserInput) (models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return models.User{}, ErrInvalidUser
	}
	if in.Role == "" {
		in.Role = "staff"
	}

	if _, err := s.users.FindByUsername(in.Username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Username: in.Username, Password: hash, Role: in.Role}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Update changes an account. An empty password keeps the current hash.
func (s *UserService) Update(id uint, in UserInput) (models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	if name := strings.TrimSpace(in.Username); name != "" && name != user.Username {
		if _, err := s.users.FindByUsername(name); err == nil {
			return models.User{}, ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, err
		}
		user.Username = name
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return models.User{}, err
		}
		user.Password = hash
	}

	if err := s.users.Update(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Delete removes an account.
func (s *UserService) Delete(id uint) error {
	if _, err := s.users.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	} else if err != nil {
		return err
	}
	return s.users.Delete(id)
}
