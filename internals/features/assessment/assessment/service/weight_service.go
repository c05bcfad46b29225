// file: internals/features/assessment/assessment/service/weight_service.go
package service

import (
	"gorm.io/gorm"

	assessmentModel "riskprofile_backend/internals/features/assessment/assessment/model"
	masterModel "riskprofile_backend/internals/features/assessment/master/model"
)

// RiskWeight — bobot + nama kategori untuk satu unit type.
type RiskWeight struct {
	Weight float64
	Name   string
}

// ResolveWeights memuat bobot kategori risiko dari risk_types sesuai unit
// type: kolom weight_uus + flag is_uus untuk UUS, weight_lpei + is_lpei
// untuk LPEI. Map kosong bila tidak ada kategori terkonfigurasi (bukan
// error). Jalankan di handle transaksi yang sama dengan penulisan agar
// snapshot-nya konsisten.
func ResolveWeights(tx *gorm.DB, unitType string) (map[int64]RiskWeight, error) {
	type row struct {
		ID     int64
		Name   string
		Weight float64
	}

	q := tx.Model(&masterModel.RiskTypeModel{})
	if unitType == assessmentModel.UnitTypeUUS {
		q = q.Select("id, name, weight_uus AS weight").Where("is_uus = ?", true)
	} else {
		q = q.Select("id, name, weight_lpei AS weight").Where("is_lpei = ?", true)
	}

	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	weights := make(map[int64]RiskWeight, len(rows))
	for _, r := range rows {
		weights[r.ID] = RiskWeight{Weight: r.Weight, Name: r.Name}
	}
	return weights, nil
}
