package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
)

type ClientRepository struct {
	DB *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *models.Client, verificationCode string) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO clients(responsible_name, org_name, email, tax_id, address, schema_name, access_key, status, verification_code)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at`,
		c.ResponsibleName, c.OrgName, c.Email, c.TaxID, c.Address,
		c.SchemaName, c.AccessKey, c.Status, verificationCode,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *ClientRepository) CountByOrgName(ctx context.Context, orgName string) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM clients WHERE org_name=$1`, orgName).Scan(&count)
	return count, err
}

func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, responsible_name, org_name, email, tax_id, address, schema_name, access_key, status, created_at
         FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		var c models.Client
		err := rows.Scan(&c.ID, &c.ResponsibleName, &c.OrgName, &c.Email, &c.TaxID,
			&c.Address, &c.SchemaName, &c.AccessKey, &c.Status, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

// Get returns a single registry row. pgx.ErrNoRows when the id has no row.
func (r *ClientRepository) Get(ctx context.Context, id int) (*models.Client, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, responsible_name, org_name, email, tax_id, address, schema_name, access_key, status, created_at
         FROM clients WHERE id=$1`, id)

	var c models.Client
	err := row.Scan(&c.ID, &c.ResponsibleName, &c.OrgName, &c.Email, &c.TaxID,
		&c.Address, &c.SchemaName, &c.AccessKey, &c.Status, &c.CreatedAt)
	return &c, err
}

// Update merges the supplied fields into the registry row; nil fields keep
// their stored values. The access key hash is always rewritten.
func (r *ClientRepository) Update(ctx context.Context, id int, req *models.UpdateClientRequest, accessKeyHash string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE clients SET
            responsible_name = COALESCE($1, responsible_name),
            org_name         = COALESCE($2, org_name),
            email            = COALESCE($3, email),
            tax_id           = COALESCE($4, tax_id),
            address          = COALESCE($5, address),
            access_key       = $6
         WHERE id=$7`,
		req.ResponsibleName, req.OrgName, req.Email, req.TaxID, req.Address,
		accessKeyHash, id)
	return err
}

// UpdateStatus writes the status and reports how many rows matched.
func (r *ClientRepository) UpdateStatus(ctx context.Context, id int, status string) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE clients SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// VerificationCodeByEmail looks the plaintext verification code up in the
// administrative registry. Used by the listing enrichment.
func (r *ClientRepository) VerificationCodeByEmail(ctx context.Context, email string) (string, error) {
	var code string
	err := r.DB.QueryRow(ctx,
		`SELECT verification_code FROM clients WHERE email=$1`, email).Scan(&code)
	return code, err
}

// Delete drops the tenant schema and removes the registry row in one
// transaction. The drop runs first; if the registry delete matches no row
// the transaction rolls back. Returns pgx.ErrNoRows when nothing was
// deleted.
func (r *ClientRepository) Delete(ctx context.Context, id int, schemaName string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	dropStmt := fmt.Sprintf(`DROP SCHEMA IF EXISTS %s CASCADE`,
		pgx.Identifier{schemaName}.Sanitize())
	if _, err := tx.Exec(ctx, dropStmt); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}
