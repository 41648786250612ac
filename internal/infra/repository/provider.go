package repository

import (
	"context"
	"encoding/json"

	"expert-booking/internal/domain/schedule"
	"expert-booking/internal/infra"
	"expert-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ProviderRepository is the read surface of the directory service: provider
// lookups for existence/authorization checks plus per-date slot templates.
type ProviderRepository struct {
	db infra.DBTX
}

func NewProviderRepository(db infra.DBTX) *ProviderRepository {
	return &ProviderRepository{db: db}
}

const findProviderSQL = `
SELECT id, name, category, approved
FROM providers
WHERE id = $1`

func (r *ProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProviderView, error) {
	var v queries.ProviderView
	err := r.db.QueryRow(ctx, findProviderSQL, id).Scan(&v.ID, &v.Name, &v.Category, &v.Approved)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find provider", err)
	}
	return &v, nil
}

const findTemplateSQL = `
SELECT times
FROM slot_templates
WHERE provider_id = $1 AND slot_date = $2`

// templateEntry is the stored shape of one template slot.
type templateEntry struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FindTemplate returns the provider's slot override for the date, or nil when
// none exists (callers fall back to the global default template).
func (r *ProviderRepository) FindTemplate(ctx context.Context, providerID uuid.UUID, date string) ([]schedule.CandidateSlot, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, findTemplateSQL, providerID, date).Scan(&raw)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to find slot template", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return nil, nil
		}
		return nil, wrapped
	}

	var entries []templateEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, infra.WrapRepoErr("malformed slot template", err, infra.KindDBFailure)
	}

	slots := make([]schedule.CandidateSlot, len(entries))
	for i, e := range entries {
		slots[i] = schedule.CandidateSlot{Time: e.Time, Available: e.Available}
	}
	return slots, nil
}

const findProviderAccountSQL = `
SELECT id, name, email, password_hash
FROM providers
WHERE id = $1`

// FindAccount adapts the provider table to the identity chain's account shape.
func (r *ProviderRepository) FindAccount(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	var v queries.AccountView
	err := r.db.QueryRow(ctx, findProviderAccountSQL, id).Scan(&v.ID, &v.Name, &v.Email, &v.PasswordHash)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find provider account", err)
	}
	v.Role = "provider"
	return &v, nil
}

const findProviderByEmailSQL = `
SELECT id, name, email, password_hash
FROM providers
WHERE email = $1`

func (r *ProviderRepository) FindAccountByEmail(ctx context.Context, email string) (*queries.AccountView, error) {
	var v queries.AccountView
	err := r.db.QueryRow(ctx, findProviderByEmailSQL, email).Scan(&v.ID, &v.Name, &v.Email, &v.PasswordHash)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find provider account by email", err)
	}
	v.Role = "provider"
	return &v, nil
}
