// Package sqlstore implements storage.Store on database/sql for SQLite and
// PostgreSQL. Queries are written once with ? placeholders and rebound for
// dialects that number their parameters.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/expensemanager/backend/internal/models"
	"github.com/expensemanager/backend/internal/storage"
	"github.com/google/uuid"
)

// Dialect selects the schema and placeholder syntax.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func (d Dialect) String() string {
	switch d {
	case SQLite:
		return "sqlite"
	case Postgres:
		return "postgres"
	}
	return "unknown"
}

// Store is a storage.Store over a *sql.DB. The caller owns opening the
// connection; Close closes it.
type Store struct {
	db      *sql.DB
	dialect Dialect
	newID   func() string
}

// New wraps db. Call Migrate before first use on a fresh database.
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect, newID: uuid.NewString}
}

// DB returns the underlying connection pool.
func (s *Store) DB() *sql.DB { return s.db }

// Dialect returns the dialect the store was built with.
func (s *Store) Dialect() Dialect { return s.dialect }

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	schema := sqliteSchema
	if s.dialect == Postgres {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate %s schema: %w", s.dialect, err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders to $1, $2, ... for Postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.rebind(query), args...)
}

func (s *Store) query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.rebind(query), args...)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return s.db.QueryRowContext(ctx, s.rebind(query), args...)
}

// rowsAffected reports whether res touched at least one row.
func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

// =============================================================================
// ACCOUNTS
// =============================================================================

const (
	insertAccountQuery     = "INSERT INTO accounts (id, name) VALUES (?, ?) ON CONFLICT (name) DO NOTHING"
	selectAccountByName    = "SELECT id, name FROM accounts WHERE name = ?"
	selectAccountByID      = "SELECT id, name FROM accounts WHERE id = ?"
	selectAllAccounts      = "SELECT id, name FROM accounts ORDER BY seq"
	updateAccountNameQuery = "UPDATE accounts SET name = ? WHERE id = ?"
	deleteAccountQuery     = "DELETE FROM accounts WHERE id = ?"
)

func (s *Store) GetOrCreateAccount(ctx context.Context, name string) (*models.Account, error) {
	name = models.NormalizeAccountName(name)

	if _, err := s.exec(ctx, insertAccountQuery, s.newID(), name); err != nil {
		return nil, fmt.Errorf("failed to create account %s: %w", name, err)
	}

	acc, err := s.scanAccount(s.queryRow(ctx, selectAccountByName, name))
	if err != nil {
		return nil, fmt.Errorf("failed to load account %s: %w", name, err)
	}
	if acc == nil {
		return nil, fmt.Errorf("account %s vanished after create", name)
	}
	return acc, nil
}

func (s *Store) GetAccountByName(ctx context.Context, name string) (*models.Account, error) {
	acc, err := s.scanAccount(s.queryRow(ctx, selectAccountByName, models.NormalizeAccountName(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to get account by name: %w", err)
	}
	return acc, nil
}

func (s *Store) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	acc, err := s.scanAccount(s.queryRow(ctx, selectAccountByID, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}
	return acc, nil
}

func (s *Store) GetAllAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.query(ctx, selectAllAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var acc models.Account
		if err := rows.Scan(&acc.ID, &acc.Name); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *Store) UpdateAccountName(ctx context.Context, id, name string) (*models.Account, error) {
	name = models.NormalizeAccountName(name)

	res, err := s.exec(ctx, updateAccountNameQuery, name, id)
	if err != nil {
		if constraintOf(err) == uniqueConstraint {
			return nil, fmt.Errorf("%w: account name %s", storage.ErrDuplicate, name)
		}
		return nil, fmt.Errorf("failed to rename account %s: %w", id, err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrAccountNotFound, id)
	}
	return &models.Account{ID: id, Name: name}, nil
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	res, err := s.exec(ctx, deleteAccountQuery, id)
	if err != nil {
		if constraintOf(err) == foreignKeyConstraint {
			return fmt.Errorf("%w: account %s", storage.ErrReferenced, id)
		}
		return fmt.Errorf("failed to delete account %s: %w", id, err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrAccountNotFound, id)
	}
	return nil
}

func (s *Store) scanAccount(row *sql.Row) (*models.Account, error) {
	var acc models.Account
	if err := row.Scan(&acc.ID, &acc.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &acc, nil
}

// =============================================================================
// PERIODS
// =============================================================================

const (
	insertPeriodQuery   = "INSERT INTO periods (id, month, year) VALUES (?, ?, ?) ON CONFLICT (month, year) DO NOTHING"
	selectPeriodByValue = "SELECT id, month, year FROM periods WHERE month = ? AND year = ?"
	selectPeriodByID    = "SELECT id, month, year FROM periods WHERE id = ?"
	selectAllPeriods    = "SELECT id, month, year FROM periods ORDER BY seq"
	updatePeriodQuery   = "UPDATE periods SET month = ?, year = ? WHERE id = ?"
	deletePeriodQuery   = "DELETE FROM periods WHERE id = ?"
)

func (s *Store) GetOrCreatePeriod(ctx context.Context, month models.Month, year int) (*models.Period, error) {
	if _, err := s.exec(ctx, insertPeriodQuery, s.newID(), string(month), year); err != nil {
		return nil, fmt.Errorf("failed to create period %s %d: %w", month, year, err)
	}

	p, err := s.scanPeriod(s.queryRow(ctx, selectPeriodByValue, string(month), year))
	if err != nil {
		return nil, fmt.Errorf("failed to load period %s %d: %w", month, year, err)
	}
	if p == nil {
		return nil, fmt.Errorf("period %s %d vanished after create", month, year)
	}
	return p, nil
}

func (s *Store) GetPeriodByValue(ctx context.Context, month models.Month, year int) (*models.Period, error) {
	p, err := s.scanPeriod(s.queryRow(ctx, selectPeriodByValue, string(month), year))
	if err != nil {
		return nil, fmt.Errorf("failed to get period by value: %w", err)
	}
	return p, nil
}

func (s *Store) GetPeriodByID(ctx context.Context, id string) (*models.Period, error) {
	p, err := s.scanPeriod(s.queryRow(ctx, selectPeriodByID, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get period by id: %w", err)
	}
	return p, nil
}

func (s *Store) GetAllPeriods(ctx context.Context) ([]models.Period, error) {
	rows, err := s.query(ctx, selectAllPeriods)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	periods := make([]models.Period, 0)
	for rows.Next() {
		var (
			p     models.Period
			month string
		)
		if err := rows.Scan(&p.ID, &month, &p.Year); err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		p.Month = models.Month(month)
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}

func (s *Store) UpdatePeriod(ctx context.Context, id string, month models.Month, year int) (*models.Period, error) {
	res, err := s.exec(ctx, updatePeriodQuery, string(month), year, id)
	if err != nil {
		if constraintOf(err) == uniqueConstraint {
			return nil, fmt.Errorf("%w: period %s %d", storage.ErrDuplicate, month, year)
		}
		return nil, fmt.Errorf("failed to update period %s: %w", id, err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrPeriodNotFound, id)
	}
	return &models.Period{ID: id, Month: month, Year: year}, nil
}

func (s *Store) DeletePeriod(ctx context.Context, id string) error {
	res, err := s.exec(ctx, deletePeriodQuery, id)
	if err != nil {
		if constraintOf(err) == foreignKeyConstraint {
			return fmt.Errorf("%w: period %s", storage.ErrReferenced, id)
		}
		return fmt.Errorf("failed to delete period %s: %w", id, err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrPeriodNotFound, id)
	}
	return nil
}

func (s *Store) scanPeriod(row *sql.Row) (*models.Period, error) {
	var (
		p     models.Period
		month string
	)
	if err := row.Scan(&p.ID, &month, &p.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Month = models.Month(month)
	return &p, nil
}

// =============================================================================
// LEDGER ENTRIES
// =============================================================================

const entryColumns = "id, account_id, period_id, starting_balance, current_balance, current_credit"

const (
	insertEntryQuery = "INSERT INTO ledger_entries (" + entryColumns + ") VALUES (?, ?, ?, ?, ?, ?)"
	selectEntryByID  = "SELECT " + entryColumns + " FROM ledger_entries WHERE id = ?"
	selectAllEntries = "SELECT " + entryColumns + " FROM ledger_entries ORDER BY seq"
	selectEntriesFor = "SELECT " + entryColumns + " FROM ledger_entries WHERE account_id = ? ORDER BY seq"
	selectEntryPair  = "SELECT " + entryColumns + " FROM ledger_entries WHERE account_id = ? AND period_id = ?"
	updateEntryQuery = "UPDATE ledger_entries SET account_id = ?, period_id = ?, starting_balance = ?, current_balance = ?, current_credit = ? WHERE id = ?"
	deleteEntryQuery = "DELETE FROM ledger_entries WHERE id = ?"
)

func (s *Store) AddEntry(ctx context.Context, values models.EntryValues) (*models.LedgerEntry, error) {
	e := models.LedgerEntry{
		ID:              s.newID(),
		AccountID:       values.AccountID,
		PeriodID:        values.PeriodID,
		StartingBalance: values.StartingBalance,
		CurrentBalance:  values.CurrentBalance,
		CurrentCredit:   values.CurrentCredit,
	}

	_, err := s.exec(ctx, insertEntryQuery,
		e.ID, e.AccountID, e.PeriodID, e.StartingBalance, e.CurrentBalance, e.CurrentCredit)
	if err != nil {
		return nil, s.entryWriteError(err, values)
	}
	return &e, nil
}

func (s *Store) GetEntryByID(ctx context.Context, id string) (*models.LedgerEntry, error) {
	e, err := scanEntry(s.queryRow(ctx, selectEntryByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", storage.ErrEntryNotFound, id)
		}
		return nil, fmt.Errorf("failed to get entry %s: %w", id, err)
	}
	return e, nil
}

func (s *Store) GetAllEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	return s.listEntries(ctx, selectAllEntries)
}

func (s *Store) GetEntriesForAccount(ctx context.Context, accountID string) ([]models.LedgerEntry, error) {
	return s.listEntries(ctx, selectEntriesFor, accountID)
}

func (s *Store) GetEntryByAccountAndPeriod(ctx context.Context, accountID, periodID string) (*models.LedgerEntry, error) {
	e, err := scanEntry(s.queryRow(ctx, selectEntryPair, accountID, periodID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry for account and period: %w", err)
	}
	return e, nil
}

func (s *Store) EditEntry(ctx context.Context, id string, values models.EntryValues) (*models.LedgerEntry, error) {
	res, err := s.exec(ctx, updateEntryQuery,
		values.AccountID, values.PeriodID,
		values.StartingBalance, values.CurrentBalance, values.CurrentCredit, id)
	if err != nil {
		return nil, s.entryWriteError(err, values)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrEntryNotFound, id)
	}

	return &models.LedgerEntry{
		ID:              id,
		AccountID:       values.AccountID,
		PeriodID:        values.PeriodID,
		StartingBalance: values.StartingBalance,
		CurrentBalance:  values.CurrentBalance,
		CurrentCredit:   values.CurrentCredit,
	}, nil
}

func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.exec(ctx, deleteEntryQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", id, err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrEntryNotFound, id)
	}
	return nil
}

func (s *Store) entryWriteError(err error, values models.EntryValues) error {
	switch constraintOf(err) {
	case uniqueConstraint:
		return fmt.Errorf("%w: entry for account %s period %s", storage.ErrDuplicate, values.AccountID, values.PeriodID)
	case foreignKeyConstraint:
		return fmt.Errorf("%w: account %s or period %s", storage.ErrInvalidReference, values.AccountID, values.PeriodID)
	}
	return fmt.Errorf("failed to write entry: %w", err)
}

func (s *Store) listEntries(ctx context.Context, query string, args ...interface{}) ([]models.LedgerEntry, error) {
	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0)
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.PeriodID,
			&e.StartingBalance, &e.CurrentBalance, &e.CurrentCredit); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func scanEntry(row *sql.Row) (*models.LedgerEntry, error) {
	var e models.LedgerEntry
	if err := row.Scan(&e.ID, &e.AccountID, &e.PeriodID,
		&e.StartingBalance, &e.CurrentBalance, &e.CurrentCredit); err != nil {
		return nil, err
	}
	return &e, nil
}

// Compile-time check: ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)
