// file: internals/features/assessment/assessment/repository/assessment_repository.go
package repository

import (
	"hash/fnv"

	"gorm.io/gorm"

	m "riskprofile_backend/internals/features/assessment/assessment/model"
)

// Replace menjalankan pola ganti-total untuk satu triple
// (user, period, unit_type): kunci advisory → hapus header lama beserta
// detailnya → insert header baru → bulk insert detail. Wajib dipanggil di
// dalam transaksi; kegagalan di langkah mana pun membatalkan semuanya.
func Replace(tx *gorm.DB, header *m.AssessmentModel, details []m.AssessmentDetailModel) error {
	if err := lockReplaceTarget(tx, header.UserID, header.PeriodID, header.UnitType); err != nil {
		return err
	}

	// hapus detail lama lewat subquery header, baru headernya
	oldHeaders := tx.Model(&m.AssessmentModel{}).Select("id").
		Where("user_id = ? AND period_id = ? AND unit_type = ?",
			header.UserID, header.PeriodID, header.UnitType)
	if err := tx.Where("assessment_id IN (?)", oldHeaders).
		Delete(&m.AssessmentDetailModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ? AND period_id = ? AND unit_type = ?",
		header.UserID, header.PeriodID, header.UnitType).
		Delete(&m.AssessmentModel{}).Error; err != nil {
		return err
	}

	if err := tx.Create(header).Error; err != nil {
		return err
	}
	if len(details) > 0 {
		for i := range details {
			details[i].AssessmentID = header.ID
		}
		if err := tx.Create(&details).Error; err != nil {
			return err
		}
	}
	return nil
}

// lockReplaceTarget menserialisasi submit ganda pada triple yang sama via
// pg_advisory_xact_lock (lepas otomatis saat commit/rollback). Di dialek
// non-Postgres (sqlite test) dilewati; unique index pada assessments tetap
// menjaga kebenarannya.
func lockReplaceTarget(tx *gorm.DB, userID, periodID int64, unitType string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(?)",
		advisoryKey(userID, periodID, unitType)).Error
}

func advisoryKey(userID, periodID int64, unitType string) int64 {
	h := fnv.New64a()
	var buf [8]byte
	putInt64 := func(v int64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	putInt64(userID)
	putInt64(periodID)
	_, _ = h.Write([]byte(unitType))
	return int64(h.Sum64())
}

// FindByTriple mengambil header + detail tersimpan milik satu user.
func FindByTriple(db *gorm.DB, userID, periodID int64, unitType string) (*m.AssessmentModel, []m.AssessmentDetailModel, error) {
	var header m.AssessmentModel
	if err := db.Where("user_id = ? AND period_id = ? AND unit_type = ?",
		userID, periodID, unitType).First(&header).Error; err != nil {
		return nil, nil, err
	}
	var details []m.AssessmentDetailModel
	if err := db.Where("assessment_id = ?", header.ID).
		Order("id").Find(&details).Error; err != nil {
		return nil, nil, err
	}
	return &header, details, nil
}
