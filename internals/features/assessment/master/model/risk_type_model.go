package model

// RiskTypeModel merepresentasikan tabel risk_types — data referensi kategori
// risiko beserta bobot per jenis unit (LPEI / UUS). Read-only bagi aplikasi;
// diisi lewat seeding/administrasi di luar scope API ini.
type RiskTypeModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"size:255;not null" json:"name"`
	WeightLPEI float64 `gorm:"column:weight_lpei;type:numeric(6,4);not null;default:0" json:"weight_lpei"`
	WeightUUS  float64 `gorm:"column:weight_uus;type:numeric(6,4);not null;default:0" json:"weight_uus"`
	IsLPEI     bool    `gorm:"column:is_lpei;not null;default:false" json:"is_lpei"`
	IsUUS      bool    `gorm:"column:is_uus;not null;default:false" json:"is_uus"`
}

func (RiskTypeModel) TableName() string {
	return "risk_types"
}
