package sqlstore

// Every table carries a seq column for creation order; ids are opaque text.
// Uniqueness and referential integrity live in the schema so that racing
// writers are resolved by the database. Foreign keys have no ON DELETE action,
// so deleting a referenced account or period fails.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS periods (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		month TEXT NOT NULL,
		year INTEGER NOT NULL,
		UNIQUE (month, year)
	)`,
	`CREATE TABLE IF NOT EXISTS ledger_entries (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		account_id TEXT NOT NULL REFERENCES accounts(id),
		period_id TEXT NOT NULL REFERENCES periods(id),
		starting_balance TEXT NOT NULL,
		current_balance TEXT NOT NULL,
		current_credit TEXT NOT NULL,
		UNIQUE (account_id, period_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_entries_account ON ledger_entries(account_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		seq BIGSERIAL PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS periods (
		seq BIGSERIAL PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		month TEXT NOT NULL,
		year INTEGER NOT NULL,
		UNIQUE (month, year)
	)`,
	`CREATE TABLE IF NOT EXISTS ledger_entries (
		seq BIGSERIAL PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		account_id TEXT NOT NULL REFERENCES accounts(id),
		period_id TEXT NOT NULL REFERENCES periods(id),
		starting_balance NUMERIC NOT NULL,
		current_balance NUMERIC NOT NULL,
		current_credit NUMERIC NOT NULL,
		UNIQUE (account_id, period_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_entries_account ON ledger_entries(account_id)`,
}
