package seed

import (
	"log"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Roles: "Usuario" is the default for new registrations
	roleNames := []string{"Administrador", "Usuario"}
	for _, name := range roleNames {
		var role models.RoleModel
		if err := db.Where("name = ?", name).First(&role).Error; err == nil {
			log.Printf("Role '%s' already exists\n", name)
			continue
		}
		if err := db.Create(&models.RoleModel{Name: name}).Error; err != nil {
			log.Printf("Failed to create role '%s': %v\n", name, err)
		} else {
			log.Printf("Role '%s' created\n", name)
		}
	}

	// Admin user
	var admin models.UserModel
	if err := db.Where("email = ?", "admin@museo.local").First(&admin).Error; err == nil {
		log.Println("User 'admin@museo.local' already exists")
	} else {
		var adminRole models.RoleModel
		if err := db.Where("name = ?", "Administrador").First(&adminRole).Error; err != nil {
			log.Printf("Failed to fetch admin role: %v\n", err)
			return
		}
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("museo"), bcrypt.DefaultCost)
		newUser := models.UserModel{
			FirstName: "Admin",
			LastName:  "MUSEO",
			Document:  "00000000",
			Email:     "admin@museo.local",
			Password:  string(hashedPassword),
			RoleID:    adminRole.Id,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create admin user: %v\n", err)
		} else {
			log.Println("User 'admin@museo.local' created")
		}
	}

	// Movement type catalog
	movementTypes := []string{"Adquisición", "Donación", "Préstamo", "Exposición", "Restauración", "Devolución"}
	createdCount := 0
	for _, name := range movementTypes {
		var catalog models.MovementCatalogModel
		if err := db.Where("name = ?", name).First(&catalog).Error; err == nil {
			continue
		}
		if err := db.Create(&models.MovementCatalogModel{Name: name}).Error; err != nil {
			log.Printf("Failed to create movement type '%s': %v\n", name, err)
		} else {
			createdCount++
		}
	}
	if createdCount > 0 {
		log.Printf("Finished creating %d new movement types\n", createdCount)
	} else {
		log.Println("All movement types already exist")
	}

	// Transaction statuses
	statuses := []string{"Pendiente", "En curso", "Completada", "Cancelada"}
	createdCount = 0
	for _, status := range statuses {
		var ts models.TransactionStatusModel
		if err := db.Where("status = ?", status).First(&ts).Error; err == nil {
			continue
		}
		if err := db.Create(&models.TransactionStatusModel{Status: status}).Error; err != nil {
			log.Printf("Failed to create transaction status '%s': %v\n", status, err)
		} else {
			createdCount++
		}
	}
	if createdCount > 0 {
		log.Printf("Finished creating %d new transaction statuses\n", createdCount)
	} else {
		log.Println("All transaction statuses already exist")
	}
}
