package master

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"riskprofile_backend/internals/features/assessment/master/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PeriodSeed struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Quarter   int    `json:"quarter"`
	StartDate string `json:"start_date"` // format: 2006-01-02
	EndDate   string `json:"end_date"`
}

func SeedPeriodsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file periods:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []PeriodSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.PeriodModel
		if err := db.Where("year = ? AND quarter = ?", data.Year, data.Quarter).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Period '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		start, err := time.Parse("2006-01-02", data.StartDate)
		if err != nil {
			log.Printf("❌ start_date tidak valid untuk '%s': %v", data.Name, err)
			continue
		}
		end, err := time.Parse("2006-01-02", data.EndDate)
		if err != nil {
			log.Printf("❌ end_date tidak valid untuk '%s': %v", data.Name, err)
			continue
		}

		p := model.PeriodModel{
			Name:      data.Name,
			Year:      data.Year,
			Quarter:   data.Quarter,
			StartDate: datatypes.Date(start),
			EndDate:   datatypes.Date(end),
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("❌ Gagal insert period '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Period '%s' berhasil ditambahkan.", data.Name)
	}
}
