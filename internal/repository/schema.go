package repository

// schemaSQL creates the tables when they do not exist yet. There are no migrations.
const schemaSQL = `
CREATE SCHEMA IF NOT EXISTS finance;

CREATE TABLE IF NOT EXISTS finance.users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL DEFAULT '',
	currency      TEXT NOT NULL DEFAULT 'PLN',
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS finance.sessions (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL REFERENCES finance.users(id) ON DELETE CASCADE,
	token_hash TEXT NOT NULL UNIQUE,
	expires_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS finance.budget_plans (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL REFERENCES finance.users(id) ON DELETE CASCADE,
	category       TEXT NOT NULL,
	monthly_amount NUMERIC(14,2) NOT NULL CHECK (monthly_amount > 0),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS finance.savings_accounts (
	id                 TEXT PRIMARY KEY,
	user_id            TEXT NOT NULL REFERENCES finance.users(id) ON DELETE CASCADE,
	name               TEXT NOT NULL,
	type               TEXT NOT NULL CHECK (type IN ('current', 'interest', 'goal', 'bond')),
	balance            NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (balance >= 0),
	interest_rate      NUMERIC(6,3),
	interest_frequency TEXT CHECK (interest_frequency IN ('daily', 'monthly', 'yearly')),
	target_amount      NUMERIC(14,2),
	maturity_date      TIMESTAMPTZ,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS finance.payments (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL REFERENCES finance.users(id) ON DELETE CASCADE,
	budget_plan_id TEXT REFERENCES finance.budget_plans(id) ON DELETE SET NULL,
	parent_id      TEXT REFERENCES finance.payments(id) ON DELETE SET NULL,
	category       TEXT NOT NULL,
	amount         NUMERIC(14,2) NOT NULL CHECK (amount > 0),
	payment_date   TIMESTAMPTZ NOT NULL,
	type           TEXT NOT NULL CHECK (type IN ('one-time', 'recurring', 'custom')),
	frequency      TEXT CHECK (frequency IN ('weekly', 'monthly', 'yearly')),
	day_of_week    INTEGER,
	day_of_month   INTEGER,
	month          INTEGER,
	custom_dates   TEXT,
	is_paid        BOOLEAN NOT NULL DEFAULT FALSE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS payments_user_date_idx ON finance.payments (user_id, payment_date);
CREATE INDEX IF NOT EXISTS sessions_expires_idx ON finance.sessions (expires_at);
`
