package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// SQLState mengembalikan kode SQLSTATE kalau error berasal dari Postgres.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return SQLState(err) == pgUniqueViolation || isDuplicateMessage(err)
}

// duplicateMarkers menangkap pesan unique violation dari driver yang tidak ditranslate gorm.
var duplicateMarkers = []string{"UNIQUE constraint failed", "Duplicate entry"}

func isDuplicateMessage(err error) bool {
	msg := err.Error()
	for _, m := range duplicateMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
