package model

import (
	"time"
)

// Jenis unit penilaian — menentukan kolom bobot & flag applicability
// pada risk_types yang dipakai.
const (
	UnitTypeLPEI = "LPEI"
	UnitTypeUUS  = "UUS"
)

// Status penilaian. Satu-satunya status yang ditulis API saat ini.
const StatusSubmitted = "SUBMITTED"

// AssessmentModel merepresentasikan tabel assessments — header hasil
// kalkulasi profil risiko. Secara logis hanya ada satu header per
// (user_id, period_id, unit_type); unique index di bawah memastikan
// submit ganda yang balapan gagal, bukan menduplikasi.
type AssessmentModel struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              int64     `gorm:"not null;uniqueIndex:ux_assessments_owner_period_unit" json:"user_id"`
	PeriodID            int64     `gorm:"not null;uniqueIndex:ux_assessments_owner_period_unit" json:"period_id"`
	UnitType            string    `gorm:"type:varchar(10);not null;uniqueIndex:ux_assessments_owner_period_unit" json:"unit_type"`
	TotalCompositeScore float64   `gorm:"type:numeric(10,2);not null" json:"total_composite_score"`
	FinalRatingLabel    string    `gorm:"size:50;not null" json:"final_rating_label"`
	Status              string    `gorm:"size:20;not null;default:'SUBMITTED'" json:"status"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AssessmentModel) TableName() string {
	return "assessments"
}

// AssessmentDetailModel merepresentasikan tabel assessment_details — satu
// baris per item yang lolos resolusi bobot, dalam urutan input. Kategori
// yang sama boleh muncul lebih dari sekali dalam satu submission; setiap
// kemunculan jadi baris sendiri dan ikut menyumbang total. Dibuat hanya
// sebagai anak dari pembuatan header dan dihapus bersama header lamanya.
type AssessmentDetailModel struct {
	ID               int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	AssessmentID     int64   `gorm:"column:assessment_id;not null;index" json:"assessment_id"`
	RiskTypeID       int64   `gorm:"column:risk_type_id;not null" json:"risk_type_id"`
	InherentOriginal float64 `gorm:"column:inherent_original;type:numeric(6,3);not null" json:"inherent_original"`
	InherentRounded  int     `gorm:"column:inherent_rounded;not null" json:"inherent_rounded"`
	KpmrScore        int     `gorm:"column:kpmr_score;not null" json:"kpmr_score"`
	RiskRating       int     `gorm:"column:risk_rating;not null" json:"risk_rating"`
	CompositeScore   float64 `gorm:"column:composite_score;type:numeric(10,4);not null" json:"composite_score"`
}

func (AssessmentDetailModel) TableName() string {
	return "assessment_details"
}
