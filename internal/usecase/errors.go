package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// Reference errors: a foreign key in the request does not resolve.
	ErrRoomNotFound           = errors.New("room doesn't exist")
	ErrSpecializationNotFound = errors.New("specialization doesn't exist")
	ErrSectionNotFound        = errors.New("section doesn't exist")

	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrAuditLogNotFound = errors.New("audit log not found")

	ErrIDMismatch           = errors.New("id in path does not match id in body")
	ErrInvalidBirthDate     = errors.New("invalid birth date format, use YYYY-MM-DD")
	ErrRoomExists           = errors.New("room number already exists")
	ErrSpecializationExists = errors.New("specialization name already exists")
	ErrSectionExists        = errors.New("section number already exists")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint whose name contains constraintName
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
