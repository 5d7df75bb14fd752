package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
// Repositories translate driver-specific errors so services never inspect
// SQLSTATE codes themselves.
var ErrDuplicate = errors.New("duplicate record")

func translateUnique(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}

	// sqlite (dev/test driver) has no typed error we depend on
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}

	return err
}
