package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
)

type AdminUserRepository struct {
	DB *pgxpool.Pool
}

func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{DB: db}
}

func (r *AdminUserRepository) Create(ctx context.Context, u *models.AdminUser) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO admin_users(name, email, secret, role)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at`,
		u.Name, u.Email, u.Secret, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, email, secret, role, created_at
         FROM admin_users WHERE email=$1`, email)

	var u models.AdminUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Secret, &u.Role, &u.CreatedAt)
	return &u, err
}

func (r *AdminUserRepository) List(ctx context.Context) ([]*models.AdminUser, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, email, secret, role, created_at
         FROM admin_users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.AdminUser
	for rows.Next() {
		var u models.AdminUser
		err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Secret, &u.Role, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// Update merges name, email, role and optionally a new secret hash into the
// row. Returns the number of rows matched.
func (r *AdminUserRepository) Update(ctx context.Context, id int, name, email, role string, secretHash *string) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE admin_users SET
            name   = $1,
            email  = $2,
            role   = $3,
            secret = COALESCE($4, secret)
         WHERE id=$5`,
		name, email, role, secretHash, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *AdminUserRepository) Delete(ctx context.Context, id int) (int64, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM admin_users WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
