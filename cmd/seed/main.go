package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"photobook/internal/config"
	"photobook/internal/database"
	"photobook/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Admin{},
		&domain.Profile{},
		&domain.Post{},
		&domain.Agreement{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in dependency order)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM agreements")
	db.Exec("DELETE FROM posts")
	db.Exec("DELETE FROM profiles")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		return string(h)
	}

	clients := []domain.User{
		{Name: "Alice Cooper", Email: "alice@example.com", PasswordHash: hash("password123"), Role: domain.RoleClient, VerificationStatus: domain.VerificationApproved},
		{Name: "Bob Stone", Email: "bob@example.com", PasswordHash: hash("password123"), Role: domain.RoleClient, VerificationStatus: domain.VerificationApproved},
	}
	for i := range clients {
		if err := db.Create(&clients[i]).Error; err != nil {
			log.Fatal("seed client failed:", err)
		}
	}

	photographers := []struct {
		user    domain.User
		profile domain.Profile
	}{
		{
			user: domain.User{Name: "Clara Lens", Email: "clara@example.com", PasswordHash: hash("password123"), Role: domain.RolePhotographer, VerificationStatus: domain.VerificationApproved},
			profile: domain.Profile{
				Portfolio:       []string{},
				Pricing:         domain.Pricing{Hourly: 120, Packages: []string{"Wedding full day", "Portrait session"}},
				Specializations: []string{"wedding", "portrait"},
				Location:        "Almaty",
				ExperienceYears: 7,
				Bio:             "Wedding and portrait photographer.",
				Rating:          4.8,
			},
		},
		{
			user: domain.User{Name: "Dan Shutter", Email: "dan@example.com", PasswordHash: hash("password123"), Role: domain.RolePhotographer, VerificationStatus: domain.VerificationPending},
			profile: domain.Profile{
				Portfolio:       []string{},
				Pricing:         domain.Pricing{Hourly: 80},
				Specializations: []string{"street", "event"},
				Location:        "Astana",
				ExperienceYears: 3,
				Bio:             "Street and event photography.",
			},
		},
	}
	for i := range photographers {
		p := &photographers[i]
		if err := db.Create(&p.user).Error; err != nil {
			log.Fatal("seed photographer failed:", err)
		}
		p.profile.UserID = p.user.ID
		if err := db.Create(&p.profile).Error; err != nil {
			log.Fatal("seed profile failed:", err)
		}
	}

	approved := photographers[0].user
	agreements := []domain.Agreement{
		{
			PhotographerID: approved.ID,
			ClientID:       clients[0].ID,
			Note:           "Wedding shoot in June",
			Status:         domain.AgreementAccepted,
			ContactDetails: "+7 700 123 45 67",
			ContractDone:   true,
			PaymentDone:    true,
			Review:         "Great work!",
		},
		{
			PhotographerID: approved.ID,
			ClientID:       clients[1].ID,
			Note:           "Family portrait session",
			Status:         domain.AgreementPending,
		},
	}
	for i := range agreements {
		if err := db.Create(&agreements[i]).Error; err != nil {
			log.Fatal("seed agreement failed:", err)
		}
	}

	fmt.Println("Seed complete:")
	fmt.Printf("  clients: %d, photographers: %d, agreements: %d\n",
		len(clients), len(photographers), len(agreements))
}
