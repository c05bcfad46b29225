package seeds

import (
	master "riskprofile_backend/internals/seeds/master"
	users "riskprofile_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data referensi awal (idempoten: baris yang sudah ada
// dilewati). Dijalankan saat SEED_ON_BOOT=true.
func RunAllSeeds(db *gorm.DB) {
	master.SeedRiskTypesFromJSON(db, "internals/seeds/master/data_risk_types.json")
	master.SeedPeriodsFromJSON(db, "internals/seeds/master/data_periods.json")
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
