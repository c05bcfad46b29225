package master

import (
	"encoding/json"
	"log"
	"os"

	"riskprofile_backend/internals/features/assessment/master/model"

	"gorm.io/gorm"
)

type RiskTypeSeed struct {
	Name       string  `json:"name"`
	WeightLPEI float64 `json:"weight_lpei"`
	WeightUUS  float64 `json:"weight_uus"`
	IsLPEI     bool    `json:"is_lpei"`
	IsUUS      bool    `json:"is_uus"`
}

func SeedRiskTypesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file risk types:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []RiskTypeSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.RiskTypeModel
		if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Risk type '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		rt := model.RiskTypeModel{
			Name:       data.Name,
			WeightLPEI: data.WeightLPEI,
			WeightUUS:  data.WeightUUS,
			IsLPEI:     data.IsLPEI,
			IsUUS:      data.IsUUS,
		}
		if err := db.Create(&rt).Error; err != nil {
			log.Printf("❌ Gagal insert risk type '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Risk type '%s' berhasil ditambahkan.", data.Name)
	}
}
