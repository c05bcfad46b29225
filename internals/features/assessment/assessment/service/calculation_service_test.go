package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{2.5, 3},     // setengah dibulatkan ke atas
		{2.49999, 2}, // tepat di bawah batas
		{3.5, 4},
		{4.5, 5},
		{2.3, 2},
		{1.0, 1},
		{5.0, 5},
		{0.2, 1}, // clamp bawah
		{5.9, 5}, // clamp atas
		{-3.0, 1},
		{9.7, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RoundHalfUp(tc.in), "RoundHalfUp(%v)", tc.in)
	}
}

func TestLookupRating(t *testing.T) {
	// matriks lengkap: baris = inheren, kolom = kpmr
	want := [5][5]int{
		{1, 1, 2, 2, 3},
		{1, 2, 2, 3, 3},
		{2, 2, 3, 3, 4},
		{2, 3, 3, 4, 5},
		{3, 4, 4, 5, 5},
	}
	for inh := 1; inh <= 5; inh++ {
		for kpmr := 1; kpmr <= 5; kpmr++ {
			got := LookupRating(inh, kpmr)
			assert.Equal(t, want[inh-1][kpmr-1], got, "LookupRating(%d,%d)", inh, kpmr)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, 5)
		}
	}
}

func TestLookupRatingOutOfRangeDefaults(t *testing.T) {
	assert.Equal(t, 3, LookupRating(0, 3))
	assert.Equal(t, 3, LookupRating(6, 1))
	assert.Equal(t, 3, LookupRating(2, 0))
	assert.Equal(t, 3, LookupRating(2, 6))
}

func TestScoreItem(t *testing.T) {
	// contoh acuan: inheren 2.3, kpmr 3, bobot 0.30
	got := ScoreItem(2.3, 3, 0.30)
	assert.Equal(t, 2, got.InherentRounded)
	assert.Equal(t, 2, got.RiskRating)
	assert.InDelta(t, 0.60, got.Composite, 1e-9)

	// composite selalu rating × bobot
	for inh := 1; inh <= 5; inh++ {
		for kpmr := 1; kpmr <= 5; kpmr++ {
			s := ScoreItem(float64(inh), kpmr, 0.25)
			assert.InDelta(t, float64(s.RiskRating)*0.25, s.Composite, 1e-9)
		}
	}
}

func TestFinalLabel(t *testing.T) {
	cases := []struct {
		total float64
		want  string
	}{
		{0.6, "Rendah (1)"},
		{1.8, "Rendah (1)"}, // batas atas inklusif
		{1.81, "Sedang Rendah (2)"},
		{2.6, "Sedang Rendah (2)"},
		{2.61, "Sedang (3)"},
		{3.4, "Sedang (3)"},
		{3.41, "Sedang Tinggi (4)"},
		{4.2, "Sedang Tinggi (4)"},
		{4.21, "Tinggi (5)"},
		{5.0, "Tinggi (5)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FinalLabel(tc.total), "FinalLabel(%v)", tc.total)
	}
}

func TestFormatWeightPercent(t *testing.T) {
	assert.Equal(t, "30.00%", FormatWeightPercent(0.30))
	assert.Equal(t, "12.50%", FormatWeightPercent(0.125))
	assert.Equal(t, "0.00%", FormatWeightPercent(0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.6, Round2(0.6000000001))
	assert.Equal(t, 2.35, Round2(2.345000001))
}
