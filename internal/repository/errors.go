// internal/repository/errors.go
package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/krowne/krownebase/internal/apperr"
)

const uniqueViolation = "23505"

// classify maps driver and gorm errors onto apperr kinds so callers never
// look at store specific codes.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.KindNotFound, op, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Wrap(apperr.KindConflict, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperr.Wrap(kindForSQLState(pgErr.Code), op, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return apperr.Wrap(kindForSQLState(string(pqErr.Code)), op, err)
	}

	if isConnectionError(err) {
		return apperr.Wrap(apperr.KindUnavailable, op, err)
	}
	return apperr.Wrap(apperr.KindDatabase, op, err)
}

func kindForSQLState(code string) apperr.Kind {
	switch {
	case code == uniqueViolation:
		return apperr.KindConflict
	// class 08 is connection exception, 57P0x is operator intervention
	case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "57P0"):
		return apperr.KindUnavailable
	default:
		return apperr.KindDatabase
	}
}

func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded)
}
