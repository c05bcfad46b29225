package dto

import "strings"

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// DetailRequest — satu item risiko yang disubmit user.
type DetailRequest struct {
	RiskTypeID int64   `json:"risk_type_id" validate:"required"`
	Inherent   float64 `json:"inherent" validate:"required,gte=1,lte=5"`
	Kpmr       int     `json:"kpmr" validate:"required,gte=1,lte=5"`
}

// CalculateRequest — submission penilaian untuk satu periode & unit type.
type CalculateRequest struct {
	PeriodID int64           `json:"period_id" validate:"required"`
	UnitType string          `json:"unit_type" validate:"required,oneof=LPEI UUS"`
	Details  []DetailRequest `json:"details" validate:"dive"`
}

func (r *CalculateRequest) Normalize() {
	r.UnitType = strings.ToUpper(strings.TrimSpace(r.UnitType))
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// TableRow — satu baris tabel hasil kalkulasi (urutan = urutan input).
type TableRow struct {
	RiskName       string  `json:"risk_name"`
	WeightPercent  string  `json:"weight_percent"`
	InherentOrigin float64 `json:"inherent_origin"`
	InherentRound  int     `json:"inherent_round"`
	Kpmr           int     `json:"kpmr"`
	RiskRating     int     `json:"risk_rating"`
	Composite      float64 `json:"composite"`
}

// CalculateResponse — payload sukses POST /assessment/calculate.
type CalculateResponse struct {
	ID          int64      `json:"id"`
	FinalScore  float64    `json:"final_score"`
	FinalRating string     `json:"final_rating"`
	TableData   []TableRow `json:"table_data"`
}
