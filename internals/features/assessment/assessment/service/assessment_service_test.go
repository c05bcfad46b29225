package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	d "riskprofile_backend/internals/features/assessment/assessment/dto"
	m "riskprofile_backend/internals/features/assessment/assessment/model"
	masterModel "riskprofile_backend/internals/features/assessment/master/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// satu koneksi saja supaya :memory: tidak terpecah antar koneksi pool
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&masterModel.RiskTypeModel{},
		&m.AssessmentModel{},
		&m.AssessmentDetailModel{},
	))
	return db
}

func seedRiskTypes(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&[]masterModel.RiskTypeModel{
		{ID: 1, Name: "Risiko Kredit", WeightLPEI: 0.30, WeightUUS: 0.20, IsLPEI: true, IsUUS: true},
		{ID: 2, Name: "Risiko Pasar", WeightLPEI: 0.25, IsLPEI: true},
		{ID: 3, Name: "Risiko Imbal Hasil", WeightUUS: 0.15, IsUUS: true}, // khusus UUS
	}).Error)
}

func TestResolveWeights(t *testing.T) {
	db := newTestDB(t)
	seedRiskTypes(t, db)

	lpei, err := ResolveWeights(db, m.UnitTypeLPEI)
	require.NoError(t, err)
	assert.Len(t, lpei, 2)
	assert.Equal(t, RiskWeight{Weight: 0.30, Name: "Risiko Kredit"}, lpei[1])
	assert.Equal(t, RiskWeight{Weight: 0.25, Name: "Risiko Pasar"}, lpei[2])

	uus, err := ResolveWeights(db, m.UnitTypeUUS)
	require.NoError(t, err)
	assert.Len(t, uus, 2)
	assert.Equal(t, RiskWeight{Weight: 0.20, Name: "Risiko Kredit"}, uus[1])
	assert.Equal(t, RiskWeight{Weight: 0.15, Name: "Risiko Imbal Hasil"}, uus[3])
}

func TestResolveWeightsEmpty(t *testing.T) {
	db := newTestDB(t)
	// tanpa seeding: map kosong, bukan error
	weights, err := ResolveWeights(db, m.UnitTypeLPEI)
	require.NoError(t, err)
	assert.Empty(t, weights)
}

func TestScoreSubmissionSkipsUnknown(t *testing.T) {
	weights := map[int64]RiskWeight{
		1: {Weight: 0.30, Name: "Risiko Kredit"},
	}
	outcomes, total := ScoreSubmission(weights, []d.DetailRequest{
		{RiskTypeID: 1, Inherent: 2.3, Kpmr: 3},
		{RiskTypeID: 99, Inherent: 5.0, Kpmr: 5}, // tidak dikenal
	})
	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[0].Skipped)
	assert.True(t, outcomes[1].Skipped)
	assert.Equal(t, SkipUnknownRiskType, outcomes[1].Reason)
	assert.InDelta(t, 0.60, total, 1e-9) // item skip tidak menyumbang total
}

func TestCalculateEndToEnd(t *testing.T) {
	db := newTestDB(t)
	seedRiskTypes(t, db)

	resp, err := Calculate(context.Background(), db, 7, &d.CalculateRequest{
		PeriodID: 1,
		UnitType: m.UnitTypeLPEI,
		Details: []d.DetailRequest{
			{RiskTypeID: 1, Inherent: 2.3, Kpmr: 3},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, 0.60, resp.FinalScore)
	assert.Equal(t, "Rendah (1)", resp.FinalRating)
	require.Len(t, resp.TableData, 1)

	row := resp.TableData[0]
	assert.Equal(t, "Risiko Kredit", row.RiskName)
	assert.Equal(t, "30.00%", row.WeightPercent)
	assert.Equal(t, 2.3, row.InherentOrigin)
	assert.Equal(t, 2, row.InherentRound)
	assert.Equal(t, 3, row.Kpmr)
	assert.Equal(t, 2, row.RiskRating)
	assert.Equal(t, 0.60, row.Composite)

	// header + detail benar-benar tersimpan
	var header m.AssessmentModel
	require.NoError(t, db.First(&header, resp.ID).Error)
	assert.Equal(t, int64(7), header.UserID)
	assert.Equal(t, m.StatusSubmitted, header.Status)
	assert.Equal(t, 0.60, header.TotalCompositeScore)
	assert.Equal(t, "Rendah (1)", header.FinalRatingLabel)

	var details []m.AssessmentDetailModel
	require.NoError(t, db.Where("assessment_id = ?", resp.ID).Find(&details).Error)
	require.Len(t, details, 1)
	assert.Equal(t, int64(1), details[0].RiskTypeID)
	assert.Equal(t, 2.3, details[0].InherentOriginal)
	assert.Equal(t, 2, details[0].InherentRounded)
	assert.Equal(t, 2, details[0].RiskRating)
}

func TestCalculateReplacesPreviousSubmission(t *testing.T) {
	db := newTestDB(t)
	seedRiskTypes(t, db)
	ctx := context.Background()

	_, err := Calculate(ctx, db, 7, &d.CalculateRequest{
		PeriodID: 1,
		UnitType: m.UnitTypeLPEI,
		Details: []d.DetailRequest{
			{RiskTypeID: 1, Inherent: 2.3, Kpmr: 3},
			{RiskTypeID: 2, Inherent: 4.0, Kpmr: 4},
		},
	})
	require.NoError(t, err)

	second, err := Calculate(ctx, db, 7, &d.CalculateRequest{
		PeriodID: 1,
		UnitType: m.UnitTypeLPEI,
		Details: []d.DetailRequest{
			{RiskTypeID: 1, Inherent: 4.6, Kpmr: 5},
		},
	})
	require.NoError(t, err)

	// tepat satu header untuk triple ini, isinya hasil submission kedua
	var headers []m.AssessmentModel
	require.NoError(t, db.Where("user_id = ? AND period_id = ? AND unit_type = ?",
		7, 1, m.UnitTypeLPEI).Find(&headers).Error)
	require.Len(t, headers, 1)
	assert.Equal(t, second.ID, headers[0].ID)
	assert.Equal(t, second.FinalScore, headers[0].TotalCompositeScore)

	var count int64
	require.NoError(t, db.Model(&m.AssessmentDetailModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count) // detail lama ikut terhapus
}

func TestCalculateDifferentTriplesCoexist(t *testing.T) {
	db := newTestDB(t)
	seedRiskTypes(t, db)
	ctx := context.Background()

	req := &d.CalculateRequest{
		PeriodID: 1,
		UnitType: m.UnitTypeLPEI,
		Details:  []d.DetailRequest{{RiskTypeID: 1, Inherent: 2.3, Kpmr: 3}},
	}
	_, err := Calculate(ctx, db, 7, req)
	require.NoError(t, err)
	_, err = Calculate(ctx, db, 8, req) // user lain
	require.NoError(t, err)

	reqUUS := &d.CalculateRequest{
		PeriodID: 1,
		UnitType: m.UnitTypeUUS,
		Details:  []d.DetailRequest{{RiskTypeID: 1, Inherent: 2.3, Kpmr: 3}},
	}
	_, err = Calculate(ctx, db, 7, reqUUS) // unit type lain
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&m.AssessmentModel{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestCalculateDuplicateRiskTypeCountsBoth(t *testing.T) {
	db := newTestDB(t)
	seedRiskTypes(t, db)

	// kategori sama dua kali = dua baris, dua komposit
	resp, err := Calculate(context.Background(), db, 7, &d.CalculateRequest{
		PeriodID: 1,
		UnitType: m.UnitTypeLPEI,
		Details: []d.DetailRequest{
			{RiskTypeID: 1, Inherent: 2.3, Kpmr: 3}, // rating 2 → 0.60
			{RiskTypeID: 1, Inherent: 4.6, Kpmr: 5}, // rating 5 → 1.50
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.TableData, 2)
	assert.Equal(t, 0.60, resp.TableData[0].Composite)
	assert.Equal(t, 1.50, resp.TableData[1].Composite)
	assert.Equal(t, 2.10, resp.FinalScore)
	assert.Equal(t, "Sedang Rendah (2)", resp.FinalRating)

	var details []m.AssessmentDetailModel
	require.NoError(t, db.Where("assessment_id = ?", resp.ID).
		Order("id").Find(&details).Error)
	require.Len(t, details, 2)
	assert.Equal(t, int64(1), details[0].RiskTypeID)
	assert.Equal(t, int64(1), details[1].RiskTypeID)
}

func TestCalculateUnknownRiskTypeProducesNoRow(t *testing.T) {
	db := newTestDB(t)
	seedRiskTypes(t, db)

	// risk type 3 hanya berlaku UUS → skip di LPEI
	resp, err := Calculate(context.Background(), db, 7, &d.CalculateRequest{
		PeriodID: 1,
		UnitType: m.UnitTypeLPEI,
		Details: []d.DetailRequest{
			{RiskTypeID: 1, Inherent: 2.3, Kpmr: 3},
			{RiskTypeID: 3, Inherent: 5.0, Kpmr: 5},
			{RiskTypeID: 99, Inherent: 5.0, Kpmr: 5},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.TableData, 1)
	assert.Equal(t, "Risiko Kredit", resp.TableData[0].RiskName)
	assert.Equal(t, 0.60, resp.FinalScore)

	var count int64
	require.NoError(t, db.Model(&m.AssessmentDetailModel{}).
		Where("assessment_id = ?", resp.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCalculateEmptyDetails(t *testing.T) {
	db := newTestDB(t)
	seedRiskTypes(t, db)

	resp, err := Calculate(context.Background(), db, 7, &d.CalculateRequest{
		PeriodID: 1,
		UnitType: m.UnitTypeLPEI,
		Details:  []d.DetailRequest{},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.FinalScore)
	assert.Equal(t, "Rendah (1)", resp.FinalRating)
	assert.Empty(t, resp.TableData)
}
