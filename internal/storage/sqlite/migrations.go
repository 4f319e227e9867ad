package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: periods and members must be created BEFORE the record
// tables due to foreign key constraints.
const schema = `
CREATE TABLE IF NOT EXISTS periods (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    closed_at INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS members (
    id TEXT PRIMARY KEY,
    display_name TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    removed_at INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS meal_records (
    id TEXT PRIMARY KEY,
    period_id TEXT NOT NULL,
    member_id TEXT NOT NULL,
    date TEXT NOT NULL,
    breakfast_units REAL NOT NULL DEFAULT 0,
    lunch_units REAL NOT NULL DEFAULT 0,
    dinner_units REAL NOT NULL DEFAULT 0,
    UNIQUE (period_id, member_id, date),
    FOREIGN KEY (period_id) REFERENCES periods(id) ON DELETE CASCADE,
    FOREIGN KEY (member_id) REFERENCES members(id)
);

CREATE TABLE IF NOT EXISTS deposits (
    id TEXT PRIMARY KEY,
    period_id TEXT NOT NULL,
    member_id TEXT NOT NULL,
    amount REAL NOT NULL,
    date TEXT NOT NULL,
    FOREIGN KEY (period_id) REFERENCES periods(id) ON DELETE CASCADE,
    FOREIGN KEY (member_id) REFERENCES members(id)
);

CREATE TABLE IF NOT EXISTS meal_costs (
    id TEXT PRIMARY KEY,
    period_id TEXT NOT NULL,
    member_id TEXT NOT NULL,
    amount REAL NOT NULL,
    date TEXT NOT NULL,
    note TEXT,
    FOREIGN KEY (period_id) REFERENCES periods(id) ON DELETE CASCADE,
    FOREIGN KEY (member_id) REFERENCES members(id)
);

CREATE TABLE IF NOT EXISTS other_costs (
    id TEXT PRIMARY KEY,
    period_id TEXT NOT NULL,
    member_id TEXT NOT NULL,
    amount REAL NOT NULL,
    is_shared INTEGER NOT NULL DEFAULT 0,
    date TEXT NOT NULL,
    note TEXT,
    FOREIGN KEY (period_id) REFERENCES periods(id) ON DELETE CASCADE,
    FOREIGN KEY (member_id) REFERENCES members(id)
);

CREATE INDEX IF NOT EXISTS idx_meal_records_period_id ON meal_records(period_id);
CREATE INDEX IF NOT EXISTS idx_deposits_period_id ON deposits(period_id);
CREATE INDEX IF NOT EXISTS idx_meal_costs_period_id ON meal_costs(period_id);
CREATE INDEX IF NOT EXISTS idx_other_costs_period_id ON other_costs(period_id);
CREATE INDEX IF NOT EXISTS idx_periods_is_active ON periods(is_active);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
