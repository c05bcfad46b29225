// file: internals/features/assessment/assessment/service/calculation_service.go
package service

import (
	"fmt"
	"math"
)

/* =========================
   Scoring engine (pure)
   ========================= */

// Matriks risiko: baris = inheren hasil pembulatan, kolom = KPMR (1..5).
// Nilai tetap; perubahan matriks di luar scope aplikasi.
var riskMatrix = [5][5]int{
	{1, 1, 2, 2, 3}, // inheren = 1
	{1, 2, 2, 3, 3}, // inheren = 2
	{2, 2, 3, 3, 4}, // inheren = 3
	{2, 3, 3, 4, 5}, // inheren = 4
	{3, 4, 4, 5, 5}, // inheren = 5
}

// defaultRiskRating dipakai bila pasangan (inheren, kpmr) di luar matriks.
// Dengan clamp seharusnya tidak pernah terjadi, tapi tetap dijaga.
const defaultRiskRating = 3

// RoundHalfUp membulatkan ke integer terdekat dengan aturan setengah ke atas
// (floor(x+0.5)), lalu clamp ke [1,5]. Harus persis begini: round-half-even
// akan menyimpang di batas .5.
func RoundHalfUp(x float64) int {
	r := int(math.Floor(x + 0.5))
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

// LookupRating mencari peringkat risiko dari matriks.
func LookupRating(inherentRounded, kpmr int) int {
	if inherentRounded < 1 || inherentRounded > 5 || kpmr < 1 || kpmr > 5 {
		return defaultRiskRating
	}
	return riskMatrix[inherentRounded-1][kpmr-1]
}

// ItemScore — hasil skor satu item risiko.
type ItemScore struct {
	InherentRounded int
	RiskRating      int
	Composite       float64
}

// ScoreItem menghitung satu baris: pembulatan inheren, lookup matriks,
// composite = peringkat × bobot. Murni & deterministik.
func ScoreItem(inherentOrigin float64, kpmr int, weight float64) ItemScore {
	rounded := RoundHalfUp(inherentOrigin)
	rating := LookupRating(rounded, kpmr)
	return ItemScore{
		InherentRounded: rounded,
		RiskRating:      rating,
		Composite:       float64(rating) * weight,
	}
}

// FinalLabel memetakan total composite ke label peringkat akhir.
// Batas atas inklusif, urut naik.
func FinalLabel(total float64) string {
	switch {
	case total <= 1.8:
		return "Rendah (1)"
	case total <= 2.6:
		return "Sedang Rendah (2)"
	case total <= 3.4:
		return "Sedang (3)"
	case total <= 4.2:
		return "Sedang Tinggi (4)"
	default:
		return "Tinggi (5)"
	}
}

// Round2 membulatkan ke 2 desimal (untuk skor akhir & composite di response).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// FormatWeightPercent memformat bobot 0..1 menjadi "30.00%".
func FormatWeightPercent(weight float64) string {
	return fmt.Sprintf("%.2f%%", weight*100)
}
