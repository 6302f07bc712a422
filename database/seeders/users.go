package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/config"
	"github.com/shashiranjanraj/tokoku/pkg/auth"
)

func init() {
	Register("default_admin", DefaultAdmin)
}

// DefaultAdmin inserts the configured admin account with a bcrypt-hashed
// password. Runs once, when the provisioner creates the users table; on
// re-runs the unique username makes it a no-op.
func DefaultAdmin(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.User{}).Where("username = ?", config.AdminUser()).Count(&n).Error; err != nil {
		return fmt.Errorf("seeders: count admin: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.AdminPass())
	if err != nil {
		return fmt.Errorf("seeders: hash admin password: %w", err)
	}

	u := models.User{
		Username: config.AdminUser(),
		Password: hash,
		Role:     "admin",
	}
	if err := db.Create(&u).Error; err != nil {
		return fmt.Errorf("seeders: insert admin: %w", err)
	}
	return nil
}
