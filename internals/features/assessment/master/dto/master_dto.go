package dto

import (
	mModel "riskprofile_backend/internals/features/assessment/master/model"
)

// RiskTypeResponse — satu kategori risiko dengan bobot sesuai unit type yang diminta.
type RiskTypeResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

func RiskTypeFromModel(m *mModel.RiskTypeModel, unitType string) RiskTypeResponse {
	w := m.WeightLPEI
	if unitType == "UUS" {
		w = m.WeightUUS
	}
	return RiskTypeResponse{ID: m.ID, Name: m.Name, Weight: w}
}
