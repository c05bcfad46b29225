// file: internals/helpers/pg_error.go
package helper

import "errors"

// Kode SQLSTATE Postgres yang dipetakan ke respons HTTP.
const (
	PgUniqueViolation = "23505"
)

// sqlStater dipenuhi error driver Postgres (pgconn.PgError) tanpa harus
// mengimpor paket drivernya di layer controller.
type sqlStater interface {
	SQLState() string
}

// IsUniqueViolation melaporkan apakah err (di mana pun dalam chain-nya)
// adalah pelanggaran unique constraint dari Postgres. Dipakai untuk
// memetakan balapan insert duplikat ke 409 alih-alih 500 generik.
func IsUniqueViolation(err error) bool {
	var s sqlStater
	return errors.As(err, &s) && s.SQLState() == PgUniqueViolation
}
