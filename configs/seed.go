package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/maojude27/FInal-project-itmajor/entity"
)

// SeedAdmin creates the default admin account on first run.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "admin@example.com")
	pass := getEnv("ADMIN_PASSWORD", "Admin123!")

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin",
		Email:    email,
		Contact:  "0000000000",
		Address:  "Admin HQ",
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("default admin created:", email)
	return nil
}
