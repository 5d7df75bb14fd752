// Seeds the catalog, a demo technician and an admin account for local
// development. Safe to run repeatedly.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	"homepro/internal/database"
	"homepro/internal/domain"
	"homepro/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var services = []domain.Service{
	{ID: "ac-installation", Name: "AC Installation", Category: "hvac", Description: "Split and window AC installation", BasePrice: 120, DurationMin: 120, Active: true},
	{ID: "ac-repair", Name: "AC Repair", Category: "hvac", Description: "Diagnostics and repair for all brands", BasePrice: 80, DurationMin: 90, Active: true},
	{ID: "furnace-maintenance", Name: "Furnace Maintenance", Category: "hvac", Description: "Seasonal furnace tune-up", BasePrice: 95, DurationMin: 60, Active: true},
	{ID: "plumbing-repair", Name: "Plumbing Repair", Category: "plumbing", Description: "Leaks, clogs and fixture replacement", BasePrice: 70, DurationMin: 60, Active: true},
	{ID: "electrical-inspection", Name: "Electrical Inspection", Category: "electrical", Description: "Full-home electrical safety check", BasePrice: 110, DurationMin: 90, Active: true},
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "homepro.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("db connection failed:", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	ctx := context.Background()
	serviceRepo := repository.NewServiceRepository(db)
	technicianRepo := repository.NewTechnicianRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	identityRepo := repository.NewIdentityRepository(db)

	for i := range services {
		if err := serviceRepo.Upsert(ctx, &services[i]); err != nil {
			log.Fatal("seed service failed:", err)
		}
	}
	log.Printf("seeded %d services", len(services))

	specialties, _ := json.Marshal([]string{"hvac", "electrical"})
	tech := &domain.Technician{
		ID:          uuid.NewString(),
		Email:       "tech@homepro.local",
		Name:        "Demo Technician",
		Phone:       "+15550100",
		Specialties: specialties,
		HourlyRate:  45,
		Rating:      4.8,
		Active:      true,
		Verified:    true,
	}
	if err := technicianRepo.Create(ctx, tech); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			log.Fatal("seed technician failed:", err)
		}
		log.Println("demo technician already present")
	} else {
		log.Println("seeded demo technician", tech.ID)
	}

	adminEmail := "admin@homepro.local"
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        adminEmail,
		PasswordHash: string(hash),
	}
	if err := identityRepo.Create(ctx, identity); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			log.Fatal("seed admin identity failed:", err)
		}
		log.Println("admin identity already present")
		return
	}

	permissions, _ := json.Marshal([]string{"applications", "bookings", "payments"})
	adminRec := &domain.Admin{
		ID:          identity.ID,
		Email:       adminEmail,
		Name:        "Admin",
		Permissions: permissions,
	}
	if err := adminRepo.Create(ctx, adminRec); err != nil {
		log.Fatal("seed admin failed:", err)
	}
	log.Println("seeded admin", identity.ID)
}
