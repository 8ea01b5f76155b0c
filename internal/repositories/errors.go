package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicateKey is returned when a unique constraint is violated.
	ErrDuplicateKey = errors.New("duplicate key value")

	// ErrForeignKeyViolation is returned when a foreign key constraint is violated.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// ConstraintError keeps the violated constraint name next to the sentinel.
type ConstraintError struct {
	Constraint string
	kind       error
	err        error
}

func (e *ConstraintError) Error() string {
	return e.kind.Error() + " (" + e.Constraint + "): " + e.err.Error()
}

func (e *ConstraintError) Is(target error) bool {
	return target == e.kind
}

func (e *ConstraintError) Unwrap() error {
	return e.err
}

// translateError maps PostgreSQL constraint violations onto the sentinels above.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		return &ConstraintError{Constraint: pgErr.ConstraintName, kind: ErrDuplicateKey, err: err}
	case "23503":
		return &ConstraintError{Constraint: pgErr.ConstraintName, kind: ErrForeignKeyViolation, err: err}
	}
	return err
}
