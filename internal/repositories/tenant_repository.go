package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
)

// TenantRepository owns everything inside a per-tenant schema: the fixed
// DDL executed at provisioning and the cross-schema user lookups the
// registry endpoints need. Schema names reaching this repository are
// trusted, pre-sanitized identifiers; they are still quoted through
// pgx.Identifier before being spliced into a statement.
type TenantRepository struct {
	DB *pgxpool.Pool
}

func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{DB: db}
}

func ident(parts ...string) string {
	return pgx.Identifier(parts).Sanitize()
}

// tenantTables holds the fixed DDL, in dependency order: users first, then
// permissions (FK users), members, income (FK members nullable, FK users),
// expense (FK users). Every statement uses IF NOT EXISTS so re-running
// provisioning does not fail on existing objects.
func tenantTables(schema string) []string {
	users := ident(schema, "users")
	members := ident(schema, "members")

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            id SERIAL PRIMARY KEY,
            name VARCHAR(255) NOT NULL,
            email VARCHAR(255) NOT NULL,
            secret VARCHAR(255) NOT NULL,
            role VARCHAR(20) NOT NULL CHECK (role IN ('cooperator', 'pastor', 'treasurer', 'deacon', 'fiscal_council')),
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`, users),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            id SERIAL PRIMARY KEY,
            user_id INT NOT NULL REFERENCES %s(id) ON DELETE CASCADE ON UPDATE CASCADE,
            page_name VARCHAR(255) NOT NULL,
            action_name VARCHAR(255) NOT NULL,
            enabled BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            UNIQUE (user_id, page_name, action_name)
        )`, ident(schema, "permissions"), users),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            id SERIAL PRIMARY KEY,
            name VARCHAR(255) NOT NULL,
            birth_date DATE,
            address VARCHAR(255),
            status VARCHAR(10) NOT NULL CHECK (status IN ('active', 'inactive'))
        )`, members),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            id SERIAL PRIMARY KEY,
            note VARCHAR(255),
            type VARCHAR(20) NOT NULL CHECK (type IN ('tithe', 'offering', 'donation', 'campaign')),
            payment_method VARCHAR(10) CHECK (payment_method IN ('cash', 'pix', 'debit', 'credit')),
            amount NUMERIC(10, 2) NOT NULL,
            date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            member_id INT REFERENCES %s(id) ON DELETE SET NULL,
            user_id INT NOT NULL REFERENCES %s(id) ON DELETE CASCADE
        )`, ident(schema, "income"), members, users),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            id SERIAL PRIMARY KEY,
            type VARCHAR(30) NOT NULL CHECK (type IN ('payment', 'salary', 'expense_allowance', 'tithe', 'offering', 'donation', 'campaign')),
            note VARCHAR(255),
            amount NUMERIC(10, 2) NOT NULL,
            amount_paid NUMERIC(10, 2),
            status VARCHAR(20) DEFAULT 'pending' CHECK (status IN ('paid', 'pending', 'partially_paid', 'overdue')),
            payment_method VARCHAR(10) CHECK (payment_method IN ('cash', 'pix', 'debit', 'credit')),
            date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            due_date DATE DEFAULT NULL,
            paid_date DATE DEFAULT NULL,
            user_id INT NOT NULL REFERENCES %s(id) ON DELETE CASCADE
        )`, ident(schema, "expense"), users),
	}
}

// Provision creates the tenant schema, its tables, the responsible person's
// user row and the default permission grants. All statements run on a
// single pooled connection, released on every exit path. Partially created
// objects are not compensated when a later step fails.
func (r *TenantRepository) Provision(ctx context.Context, schema string, admin *models.TenantUser, grants []models.PermissionGrant) error {
	conn, err := r.DB.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	createSchema := fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, ident(schema))
	if _, err := conn.Exec(ctx, createSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	for _, stmt := range tenantTables(schema) {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create tenant tables: %w", err)
		}
	}

	insertUser := fmt.Sprintf(
		`INSERT INTO %s (name, email, secret, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		ident(schema, "users"))
	if err := conn.QueryRow(ctx, insertUser,
		admin.Name, admin.Email, admin.Secret, admin.Role,
	).Scan(&admin.ID, &admin.CreatedAt); err != nil {
		return fmt.Errorf("create tenant user: %w", err)
	}

	insertGrant := fmt.Sprintf(
		`INSERT INTO %s (user_id, page_name, action_name, enabled) VALUES ($1, $2, $3, $4)`,
		ident(schema, "permissions"))
	for _, g := range grants {
		if _, err := conn.Exec(ctx, insertGrant, admin.ID, g.PageName, g.ActionName, true); err != nil {
			return fmt.Errorf("grant permission: %w", err)
		}
	}

	return nil
}

// UserSecretByEmail returns the hashed secret of the tenant user matched by
// email. Used by the listing enrichment; pgx.ErrNoRows when absent.
func (r *TenantRepository) UserSecretByEmail(ctx context.Context, schema, email string) (string, error) {
	query := fmt.Sprintf(`SELECT secret FROM %s WHERE email=$1`, ident(schema, "users"))

	var secret string
	err := r.DB.QueryRow(ctx, query, email).Scan(&secret)
	return secret, err
}

// UpdateUserByEmail merges name, email and secret into the tenant user row
// matched by the given email. Nil fields keep their stored values.
func (r *TenantRepository) UpdateUserByEmail(ctx context.Context, schema string, name, newEmail, secretHash *string, matchEmail string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET
            name   = COALESCE($1, name),
            email  = COALESCE($2, email),
            secret = COALESCE($3, secret)
         WHERE email=$4`, ident(schema, "users"))

	_, err := r.DB.Exec(ctx, query, name, newEmail, secretHash, matchEmail)
	return err
}
