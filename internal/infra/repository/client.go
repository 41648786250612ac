package repository

import (
	"context"

	"expert-booking/internal/infra"
	"expert-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ClientRepository backs the first link of the identity resolution chain.
// Admin accounts live in this table with role = 'admin'.
type ClientRepository struct {
	db infra.DBTX
}

func NewClientRepository(db infra.DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

const findClientAccountSQL = `
SELECT id, name, email, password_hash, role
FROM clients
WHERE id = $1`

func (r *ClientRepository) FindAccount(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	var v queries.AccountView
	err := r.db.QueryRow(ctx, findClientAccountSQL, id).Scan(&v.ID, &v.Name, &v.Email, &v.PasswordHash, &v.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find client account", err)
	}
	return &v, nil
}

const findClientByEmailSQL = `
SELECT id, name, email, password_hash, role
FROM clients
WHERE email = $1`

func (r *ClientRepository) FindAccountByEmail(ctx context.Context, email string) (*queries.AccountView, error) {
	var v queries.AccountView
	err := r.db.QueryRow(ctx, findClientByEmailSQL, email).Scan(&v.ID, &v.Name, &v.Email, &v.PasswordHash, &v.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find client account by email", err)
	}
	return &v, nil
}
