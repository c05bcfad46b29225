package users

import (
	"encoding/json"
	"log"
	"os"

	authService "riskprofile_backend/internals/features/users/auth/service"
	"riskprofile_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

type UserSeed struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashedPassword, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		fullName := data.FullName
		u := model.UserModel{
			Email:    data.Email,
			FullName: &fullName,
			Password: hashedPassword,
			Role:     data.Role,
			IsActive: true,
		}
		u.SetDefaultValues()
		if err := db.Create(&u).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ User '%s' berhasil ditambahkan.", data.Email)
	}
}
