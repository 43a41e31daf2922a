package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/istore-api/internal/domain"
	"github.com/jhoicas/istore-api/internal/domain/entity"
	"github.com/jhoicas/istore-api/internal/domain/repository"
)

var _ repository.WhitelistRepository = (*WhitelistRepo)(nil)

// WhitelistRepo implementación del puerto WhitelistRepository sobre PostgreSQL (usable con pool o tx).
type WhitelistRepo struct {
	q Querier
}

// NewWhitelistRepository construye el adaptador de la whitelist. Pasar pool o tx (Querier).
func NewWhitelistRepository(q Querier) *WhitelistRepo {
	return &WhitelistRepo{q: q}
}

// Create persiste un email pre-aprobado.
func (r *WhitelistRepo) Create(entry *entity.WhitelistEntry) error {
	query := `INSERT INTO whitelist (id, email, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, entry.ID, entry.Email, entry.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert whitelist entry: %w", err)
	}
	return nil
}

// IsWhitelisted indica si el email está pre-aprobado (sin distinguir mayúsculas).
func (r *WhitelistRepo) IsWhitelisted(email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM whitelist WHERE LOWER(email) = LOWER($1))`
	err := r.q.QueryRow(context.Background(), query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("is whitelisted: %w", err)
	}
	return exists, nil
}

// List lista todas las entradas de la whitelist.
func (r *WhitelistRepo) List() ([]*entity.WhitelistEntry, error) {
	query := `SELECT id, email, created_at FROM whitelist ORDER BY email`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list whitelist: %w", err)
	}
	defer rows.Close()
	var list []*entity.WhitelistEntry
	for rows.Next() {
		var e entity.WhitelistEntry
		if err := rows.Scan(&e.ID, &e.Email, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan whitelist entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina una entrada por ID.
func (r *WhitelistRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM whitelist WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete whitelist entry: %w", err)
	}
	return nil
}

// DeleteByEmail elimina la entrada consumida tras un registro exitoso.
func (r *WhitelistRepo) DeleteByEmail(email string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM whitelist WHERE LOWER(email) = LOWER($1)`, email)
	if err != nil {
		return fmt.Errorf("delete whitelist entry by email: %w", err)
	}
	return nil
}
