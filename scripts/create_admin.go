// scripts/create_admin.go
// Seeds the reference data a fresh install needs: two departments, an admin
// account and a couple of demo employees. Safe to re-run; existing emails are
// left untouched.
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/themut001/timecard-web-v3/config"
	"github.com/themut001/timecard-web-v3/database"
	"github.com/themut001/timecard-web-v3/models"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	it := ensureDepartment(db, "IT")
	sales := ensureDepartment(db, "Sales")

	admin := ensureUser(db, models.User{
		EmployeeID:   "A001",
		Name:         "Admin",
		Email:        "admin@company.com",
		Role:         models.RoleAdmin,
		DepartmentID: it.ID,
	}, "password123")

	ensureUser(db, models.User{
		EmployeeID:   "E001",
		Name:         "Taro Tanaka",
		Email:        "user@company.com",
		Role:         models.RoleEmployee,
		DepartmentID: it.ID,
	}, "password123")
	ensureUser(db, models.User{
		EmployeeID:   "S001",
		Name:         "Ichiro Suzuki",
		Email:        "suzuki@company.com",
		Role:         models.RoleEmployee,
		DepartmentID: sales.ID,
	}, "password123")

	// departments are created before users, so backfill the manager link
	for _, d := range []*models.Department{it, sales} {
		if d.ManagerID == "" {
			if err := db.Model(d).Update("manager_id", admin.ID).Error; err != nil {
				log.Fatalf("failed to set manager for %s: %v", d.Name, err)
			}
		}
	}

	fmt.Println("seed complete")
	fmt.Println("  admin login: admin@company.com / password123 (change it!)")
}

func ensureDepartment(db *gorm.DB, name string) *models.Department {
	var dep models.Department
	err := db.Where("name = ?", name).First(&dep).Error
	if err == nil {
		return &dep
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to query departments: %v", err)
	}
	dep = models.Department{Name: name}
	if err := db.Create(&dep).Error; err != nil {
		log.Fatalf("failed to create department %s: %v", name, err)
	}
	return &dep
}

func ensureUser(db *gorm.DB, u models.User, password string) *models.User {
	var existing models.User
	err := db.Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		fmt.Printf("  user %s already exists, skipping\n", u.Email)
		return &existing
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to query users: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	u.PasswordHash = string(hashed)
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert user %s: %v", u.Email, err)
	}
	fmt.Printf("  created %s (%s)\n", u.Email, u.Role)
	return &u
}
