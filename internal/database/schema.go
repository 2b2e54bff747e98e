package database

// schemaStatements are applied in order; every statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id BIGSERIAL PRIMARY KEY,
		employee_id TEXT UNIQUE,
		name TEXT NOT NULL,
		designation TEXT,
		dob DATE,
		joining_date DATE,
		payroll_name TEXT,
		team TEXT,
		grade TEXT,
		profile_image TEXT,
		password TEXT,
		pl INT NOT NULL DEFAULT 0,
		cl INT NOT NULL DEFAULT 0,
		sl INT NOT NULL DEFAULT 0,
		el INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS admin (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS leave_events (
		id BIGSERIAL PRIMARY KEY,
		employee_id TEXT NOT NULL,
		date DATE NOT NULL,
		leave_type TEXT NOT NULL,
		color TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leave_events_employee_date ON leave_events (employee_id, date)`,

	`CREATE TABLE IF NOT EXISTS leave_summary (
		employee_id TEXT PRIMARY KEY,
		pl INT NOT NULL DEFAULT 0,
		cl INT NOT NULL DEFAULT 0,
		sl INT NOT NULL DEFAULT 0,
		el INT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		date DATE NOT NULL,
		description TEXT,
		event_type TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS employee_documents (
		id BIGSERIAL PRIMARY KEY,
		employee_id TEXT NOT NULL UNIQUE REFERENCES employees(employee_id) ON DELETE CASCADE,
		offer_letter_url TEXT,
		salary_slip_url TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS counters (
		counter_type TEXT PRIMARY KEY,
		last_value BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS outbox_events (
		id UUID PRIMARY KEY,
		request_id TEXT,
		aggregate_type TEXT NOT NULL,
		aggregate_id TEXT NOT NULL,
		event_type TEXT NOT NULL,
		topic TEXT NOT NULL,
		payload JSONB NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'sent', 'failed')),
		retry_count INT NOT NULL DEFAULT 0,
		next_retry_at TIMESTAMPTZ,
		error_message TEXT,
		processed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created ON outbox_events (status, created_at)`,
}
