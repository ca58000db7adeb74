// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// A row that does not exist is reported as an error wrapping pgx.ErrNoRows,
// including updates and deletes that affect no rows.
package repository

import (
	"errors"
	"fmt"

	"github.com/deppfellow/listings-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// expectAffected turns an UPDATE/DELETE that matched nothing into pgx.ErrNoRows.
func expectAffected(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// missingReference reports whether err is a foreign key violation, which
// means a referenced row disappeared between the existence check and the write.
func missingReference(err error) bool {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return sqlerr.MapCode(pgerr.Code) == sqlerr.ForeignKeyViolation
	}
	return false
}

func notFound(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, pgx.ErrNoRows)...)
}
