package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL,
		role TEXT NOT NULL,
		phone_number TEXT,
		address TEXT,
		latitude REAL,
		longitude REAL,
		is_verified BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE customer_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		emergency_contact TEXT,
		preferred_payment_method TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProviderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE service_provider_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		business_name TEXT NOT NULL,
		business_license TEXT NOT NULL UNIQUE,
		provider_type TEXT NOT NULL,
		description TEXT,
		operating_hours TEXT,
		is_approved BOOLEAN NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		commission_rate REAL NOT NULL DEFAULT 10.0,
		unpaid_dues_count INTEGER NOT NULL DEFAULT 0,
		total_unpaid_amount REAL NOT NULL DEFAULT 0,
		rating REAL NOT NULL DEFAULT 0,
		total_reviews INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createVehicleTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vehicles (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		vehicle_type TEXT NOT NULL,
		license_plate TEXT NOT NULL UNIQUE,
		color TEXT,
		is_primary BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createServiceTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE service_categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		icon TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1
	);`)
	mustExec(t, db, `CREATE TABLE services (
		id TEXT PRIMARY KEY,
		provider_id TEXT NOT NULL,
		category_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		base_price REAL NOT NULL,
		estimated_duration INTEGER NOT NULL DEFAULT 0,
		is_available BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createRequestTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE service_requests (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		provider_id TEXT,
		service_id TEXT NOT NULL,
		vehicle_id TEXT NOT NULL,
		description TEXT NOT NULL,
		priority TEXT NOT NULL DEFAULT 'medium',
		status TEXT NOT NULL DEFAULT 'pending',
		pickup_latitude REAL NOT NULL,
		pickup_longitude REAL NOT NULL,
		pickup_address TEXT NOT NULL,
		requested_at DATETIME NOT NULL,
		accepted_at DATETIME,
		started_at DATETIME,
		completed_at DATETIME,
		scheduled_for DATETIME,
		estimated_cost REAL,
		final_cost REAL,
		cancellation_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE service_request_updates (
		id TEXT PRIMARY KEY,
		request_id TEXT NOT NULL,
		status TEXT NOT NULL,
		message TEXT,
		created_by TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`)
}

func createBillingTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE invoices (
		id TEXT PRIMARY KEY,
		request_id TEXT NOT NULL UNIQUE,
		invoice_number TEXT NOT NULL UNIQUE,
		subtotal REAL NOT NULL,
		tax_amount REAL NOT NULL DEFAULT 0,
		discount_amount REAL NOT NULL DEFAULT 0,
		total_amount REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_method TEXT,
		paid_amount REAL NOT NULL DEFAULT 0,
		issued_at DATETIME NOT NULL,
		due_date DATETIME NOT NULL,
		paid_at DATETIME,
		notes TEXT
	);`)
	mustExec(t, db, `CREATE TABLE invoice_items (
		id TEXT PRIMARY KEY,
		invoice_id TEXT NOT NULL,
		description TEXT NOT NULL,
		quantity REAL NOT NULL DEFAULT 1,
		unit_price REAL NOT NULL,
		total_price REAL NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		invoice_id TEXT NOT NULL,
		amount REAL NOT NULL,
		method TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		transaction_id TEXT,
		created_at DATETIME,
		processed_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE commissions (
		id TEXT PRIMARY KEY,
		provider_id TEXT NOT NULL,
		payment_id TEXT NOT NULL UNIQUE,
		rate REAL NOT NULL,
		amount REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		is_cash_payment BOOLEAN NOT NULL DEFAULT 0,
		due_date DATETIME NOT NULL,
		paid_at DATETIME,
		created_at DATETIME
	);`)
}

// createMarketplaceTables sets up every table the request repository's
// preloads can touch.
func createMarketplaceTables(t *testing.T, db *gorm.DB) {
	createUserTables(t, db)
	createProviderTable(t, db)
	createVehicleTable(t, db)
	createServiceTables(t, db)
	createRequestTables(t, db)
	createReviewTable(t, db)
}

func createReviewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reviews (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		provider_id TEXT NOT NULL,
		request_id TEXT NOT NULL UNIQUE,
		rating INTEGER NOT NULL,
		comment TEXT,
		quality_rating INTEGER,
		timeliness_rating INTEGER,
		professionalism_rating INTEGER,
		value_rating INTEGER,
		is_featured BOOLEAN NOT NULL DEFAULT 0,
		is_approved BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
