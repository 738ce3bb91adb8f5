package sqlstore

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Postgres SQLSTATE codes shared by lib/pq and pgx.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type constraintKind int

const (
	noConstraint constraintKind = iota
	uniqueConstraint
	foreignKeyConstraint
)

// constraintOf reports which integrity constraint, if any, err violated.
func constraintOf(err error) constraintKind {
	if err == nil {
		return noConstraint
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return uniqueConstraint
		case sqlite3.ErrConstraintForeignKey:
			return foreignKeyConstraint
		}
		return noConstraint
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pgConstraint(string(pqErr.Code))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgConstraint(pgErr.Code)
	}

	return noConstraint
}

func pgConstraint(code string) constraintKind {
	switch code {
	case pgUniqueViolation:
		return uniqueConstraint
	case pgForeignKeyViolation:
		return foreignKeyConstraint
	}
	return noConstraint
}
