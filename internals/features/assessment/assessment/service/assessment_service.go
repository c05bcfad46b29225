// file: internals/features/assessment/assessment/service/assessment_service.go
package service

import (
	"context"

	"gorm.io/gorm"

	d "riskprofile_backend/internals/features/assessment/assessment/dto"
	m "riskprofile_backend/internals/features/assessment/assessment/model"
	repo "riskprofile_backend/internals/features/assessment/assessment/repository"
)

/* =========================
   Per-item outcome
   ========================= */

// Alasan skip satu item. Saat ini satu-satunya: kategori tidak dikenal /
// tidak berlaku untuk unit type tersebut. Kebijakan: dilewati diam-diam,
// bukan error — item skip tidak muncul di tabel maupun total.
const SkipUnknownRiskType = "risk_type tidak dikenal untuk unit type ini"

// RowOutcome — hasil eksplisit per item: tersekor atau dilewati dengan
// alasan. Membuat kebijakan skip bisa diuji, bukan filter implisit.
type RowOutcome struct {
	Skipped bool
	Reason  string
	Row     d.TableRow
	Detail  m.AssessmentDetailModel
}

// ScoreSubmission menskor seluruh item dalam urutan input terhadap bobot
// yang sudah diresolve, mengembalikan outcome per item + total composite.
// Item yang dilewati tidak menyumbang total.
func ScoreSubmission(weights map[int64]RiskWeight, details []d.DetailRequest) ([]RowOutcome, float64) {
	outcomes := make([]RowOutcome, 0, len(details))
	total := 0.0

	for _, item := range details {
		rw, ok := weights[item.RiskTypeID]
		if !ok {
			outcomes = append(outcomes, RowOutcome{
				Skipped: true,
				Reason:  SkipUnknownRiskType,
			})
			continue
		}

		score := ScoreItem(item.Inherent, item.Kpmr, rw.Weight)
		total += score.Composite

		outcomes = append(outcomes, RowOutcome{
			Row: d.TableRow{
				RiskName:       rw.Name,
				WeightPercent:  FormatWeightPercent(rw.Weight),
				InherentOrigin: item.Inherent,
				InherentRound:  score.InherentRounded,
				Kpmr:           item.Kpmr,
				RiskRating:     score.RiskRating,
				Composite:      Round2(score.Composite),
			},
			Detail: m.AssessmentDetailModel{
				RiskTypeID:       item.RiskTypeID,
				InherentOriginal: item.Inherent,
				InherentRounded:  score.InherentRounded,
				KpmrScore:        item.Kpmr,
				RiskRating:       score.RiskRating,
				CompositeScore:   score.Composite,
			},
		})
	}
	return outcomes, total
}

/* =========================
   Orchestrator
   ========================= */

// Calculate menjalankan seluruh submission sebagai satu unit atomik:
// resolve bobot → skor per item → ganti header+detail lama untuk triple
// (user, period, unit_type) → response. Gagal di tengah = tidak ada yang
// tersimpan; transaksi di-rollback (termasuk saat caller disconnect,
// lewat context).
func Calculate(ctx context.Context, db *gorm.DB, userID int64, req *d.CalculateRequest) (*d.CalculateResponse, error) {
	var resp *d.CalculateResponse

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		weights, err := ResolveWeights(tx, req.UnitType)
		if err != nil {
			return err
		}

		outcomes, total := ScoreSubmission(weights, req.Details)

		tableData := make([]d.TableRow, 0, len(outcomes))
		detailRows := make([]m.AssessmentDetailModel, 0, len(outcomes))
		for _, o := range outcomes {
			if o.Skipped {
				continue
			}
			tableData = append(tableData, o.Row)
			detailRows = append(detailRows, o.Detail)
		}

		header := &m.AssessmentModel{
			UserID:              userID,
			PeriodID:            req.PeriodID,
			UnitType:            req.UnitType,
			TotalCompositeScore: Round2(total),
			FinalRatingLabel:    FinalLabel(total),
			Status:              m.StatusSubmitted,
		}
		if err := repo.Replace(tx, header, detailRows); err != nil {
			return err
		}

		resp = &d.CalculateResponse{
			ID:          header.ID,
			FinalScore:  header.TotalCompositeScore,
			FinalRating: header.FinalRatingLabel,
			TableData:   tableData,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
