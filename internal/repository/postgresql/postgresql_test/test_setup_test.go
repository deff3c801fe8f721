package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/hangerline/hangerline-backend-go/internal/pkg/database"
)

// schema mirrors the production tables the repositories read and write.
const schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS line_target (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	source_connection VARCHAR(10) NOT NULL,
	target_date DATE NOT NULL,
	shift VARCHAR(10) NOT NULL,
	total_target_qty BIGINT NOT NULL DEFAULT 0,
	loading_qty BIGINT NOT NULL DEFAULT 0,
	remarks TEXT,
	UNIQUE (source_connection, target_date, shift)
);

CREATE TABLE IF NOT EXISTS line_target_detail (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	linetarget_id UUID NOT NULL REFERENCES line_target(id) ON DELETE CASCADE,
	pono VARCHAR(50),
	st_id VARCHAR(50),
	item_id VARCHAR(50),
	item_title VARCHAR(200),
	target_qty BIGINT NOT NULL DEFAULT 0,
	shift VARCHAR(10)
);

CREATE TABLE IF NOT EXISTS operator_daily_performance (
	id BIGSERIAL PRIMARY KEY,
	odp_date DATE NOT NULL,
	shift VARCHAR(10),
	source_connection VARCHAR(10),
	st_id VARCHAR(50),
	odp_em_key BIGINT,
	oc_description VARCHAR(200),
	loading_qty INTEGER,
	unloading_qty INTEGER,
	odpd_lot_number VARCHAR(50),
	efficiency NUMERIC(8, 2)
);

CREATE TABLE IF NOT EXISTS operationinformation (
	id BIGSERIAL PRIMARY KEY,
	articleno VARCHAR(50),
	totalsmv NUMERIC(10, 4),
	conversionfactor NUMERIC(10, 4),
	applicabledate DATE
);

CREATE TABLE IF NOT EXISTS hangerline_emp (
	emp_id VARCHAR(20) PRIMARY KEY,
	current_line_id VARCHAR(10),
	shift VARCHAR(10),
	activestatus BOOLEAN
);

CREATE TABLE IF NOT EXISTS quality_control_repair (
	id BIGSERIAL PRIMARY KEY,
	qcr_date DATE NOT NULL,
	shift VARCHAR(10),
	source_connection VARCHAR(10),
	qcr_defect_em_key BIGINT,
	defect_em_firstname VARCHAR(100),
	defect_em_lastname VARCHAR(100),
	qcsc_description VARCHAR(200),
	qcr_defect_quantity INTEGER
);

CREATE TABLE IF NOT EXISTS breakdown_category (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS breakdown (
	id BIGSERIAL PRIMARY KEY,
	p_date DATE NOT NULL,
	line_no VARCHAR(10) NOT NULL,
	shift VARCHAR(10) NOT NULL,
	breakdown_category_id INTEGER REFERENCES breakdown_category(id),
	time_start TIMESTAMPTZ NOT NULL,
	time_end TIMESTAMPTZ NOT NULL,
	operator_effected INTEGER
);

CREATE TABLE IF NOT EXISTS dashboard_user (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	username VARCHAR(150) NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_staff BOOLEAN NOT NULL DEFAULT false,
	is_active BOOLEAN NOT NULL DEFAULT true,
	last_login TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// TestDatabaseSetup wraps the database the repository tests run against.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and skips the test when it is not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	if _, err := db.Exec(ctx, schema); err != nil {
		db.Close()
		t.Fatalf("failed to create schema: %v", err)
	}
	if err := setup.TruncateAllTables(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to truncate tables: %v", err)
	}

	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables clears every table the tests write to.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"line_target_detail",
		"line_target",
		"dashboard_user",
		"operator_daily_performance",
		"operationinformation",
		"hangerline_emp",
		"quality_control_repair",
		"breakdown",
		"breakdown_category",
	}

	for _, table := range tables {
		if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}
