package model

import (
	"gorm.io/datatypes"
)

// PeriodModel merepresentasikan tabel periods — periode penilaian (tahun + triwulan).
type PeriodModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Year      int            `gorm:"not null" json:"year"`
	Quarter   int            `gorm:"not null" json:"quarter"`
	StartDate datatypes.Date `gorm:"column:start_date" json:"start_date"`
	EndDate   datatypes.Date `gorm:"column:end_date" json:"end_date"`
}

func (PeriodModel) TableName() string {
	return "periods"
}
