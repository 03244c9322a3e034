package configs

import (
	"log"
	"strings"

	"github.com/GermanChai/germanchai/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from the environment. The
// admin is a role on the user row, not a magic email.
func SeedAdmin(email, password string) error {
	db := DB()
	if email == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&entity.User{
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleAdmin,
	}).Error
}

// SeedMenu loads a starter catalog into an empty database.
func SeedMenu() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Masala Chai", Description: "House blend with ginger and cardamom", Category: "Chai", Price: 4000, Available: true},
		{Name: "Cutting Chai", Description: "Half glass, full strength", Category: "Chai", Price: 2500, Available: true},
		{Name: "Kesar Chai", Description: "Saffron infused", Category: "Chai", Price: 6000, Available: true},
		{Name: "Samosa", Description: "Crisp pastry, spiced potato filling", Category: "Snacks", Price: 3000, Available: true},
		{Name: "Vada Pav", Description: "Mumbai style, green chutney", Category: "Snacks", Price: 5000, Available: true},
		{Name: "Bun Maska", Description: "Soft bun, salted butter", Category: "Snacks", Price: 3500, Available: true},
	}
	return db.Create(&items).Error
}
