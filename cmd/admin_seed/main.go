// Command admin_seed bootstraps a fresh install: it creates the default
// admin account and a starter canteen catalog when the tables are empty.
package main

import (
	"log"
	"os"

	"cantina/internal/config"
	"cantina/internal/models"
	"cantina/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUsername == "" || adminPassword == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err == nil {
				sqlDB.Close()
			}
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	seedAdmin(adminUsername, adminPassword)
	seedProducts()
}

func seedAdmin(username, password string) {
	var existing models.User
	if err := repositories.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
		TokenVersion: 1,
	}
	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}
	log.Println("Admin account created")
}

func seedProducts() {
	var count int64
	if err := repositories.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count products:", err)
	}
	if count > 0 {
		log.Println("Catalog already seeded")
		return
	}

	starter := []models.Product{
		{Name: "Refrigerante Lata", Price: 4.50, Stock: 50, Category: "Bebidas"},
		{Name: "Água Mineral", Price: 2.50, Stock: 100, Category: "Bebidas"},
		{Name: "Café", Price: 3.00, Stock: 30, Category: "Bebidas"},
		{Name: "Suco Natural", Price: 5.50, Stock: 25, Category: "Bebidas"},
		{Name: "Salgadinho", Price: 3.50, Stock: 60, Category: "Salgados"},
		{Name: "Pão de Queijo", Price: 3.00, Stock: 45, Category: "Salgados"},
		{Name: "Chocolate", Price: 4.00, Stock: 40, Category: "Doces"},
		{Name: "Biscoitos", Price: 2.00, Stock: 70, Category: "Doces"},
		{Name: "Bolo Fatia", Price: 6.00, Stock: 20, Category: "Doces"},
		{Name: "Sanduíche", Price: 8.00, Stock: 15, Category: "Refeições"},
		{Name: "Salada", Price: 10.00, Stock: 12, Category: "Refeições"},
		{Name: "Pizza Fatia", Price: 7.50, Stock: 18, Category: "Refeições"},
	}

	for i := range starter {
		if err := repositories.DB.Create(&starter[i]).Error; err != nil {
			log.Fatal("Failed to seed product:", err)
		}
	}
	log.Printf("Seeded %d starter products", len(starter))
}
