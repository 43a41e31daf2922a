package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/istore-api/internal/domain/entity"
	"github.com/jhoicas/istore-api/internal/domain/repository"
)

var _ repository.StoreAccessRepository = (*StoreAccessRepo)(nil)

// StoreAccessRepo implementación del puerto StoreAccessRepository sobre PostgreSQL (usable con pool o tx).
type StoreAccessRepo struct {
	q Querier
}

// NewStoreAccessRepository construye el adaptador de accesos usuario-tienda. Pasar pool o tx (Querier).
func NewStoreAccessRepository(q Querier) *StoreAccessRepo {
	return &StoreAccessRepo{q: q}
}

// Grant concede acceso. Idempotente: repetir un acceso existente no es error.
func (r *StoreAccessRepo) Grant(userID, storeID string) error {
	query := `
		INSERT INTO store_access (user_id, store_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, store_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, userID, storeID)
	if err != nil {
		return fmt.Errorf("grant access: %w", err)
	}
	return nil
}

// Revoke retira el acceso de un usuario a una tienda.
func (r *StoreAccessRepo) Revoke(userID, storeID string) error {
	query := `DELETE FROM store_access WHERE user_id = $1 AND store_id = $2`
	_, err := r.q.Exec(context.Background(), query, userID, storeID)
	if err != nil {
		return fmt.Errorf("revoke access: %w", err)
	}
	return nil
}

// HasAccess indica si existe un acceso explícito usuario-tienda.
func (r *StoreAccessRepo) HasAccess(userID, storeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM store_access WHERE user_id = $1 AND store_id = $2)`
	err := r.q.QueryRow(context.Background(), query, userID, storeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has access: %w", err)
	}
	return exists, nil
}

// ListStoresForUser lista las tiendas a las que el usuario tiene acceso explícito.
func (r *StoreAccessRepo) ListStoresForUser(userID string) ([]*entity.Store, error) {
	query := `
		SELECT s.id, s.name, s.created_at, s.updated_at
		FROM stores s
		JOIN store_access sa ON sa.store_id = s.id
		WHERE sa.user_id = $1
		ORDER BY s.name`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list stores for user: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListUsersForStore lista los usuarios con acceso explícito a la tienda.
func (r *StoreAccessRepo) ListUsersForStore(storeID string) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.email, u.pseudo, u.password_hash, u.role, u.created_at, u.updated_at
		FROM users u
		JOIN store_access sa ON sa.user_id = u.id
		WHERE sa.store_id = $1
		ORDER BY u.pseudo`
	rows, err := r.q.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list users for store: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Pseudo, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// RevokeAllForUser elimina todos los accesos de un usuario.
func (r *StoreAccessRepo) RevokeAllForUser(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM store_access WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("revoke all for user: %w", err)
	}
	return nil
}

// RevokeAllForStore elimina todos los accesos a una tienda.
func (r *StoreAccessRepo) RevokeAllForStore(storeID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM store_access WHERE store_id = $1`, storeID)
	if err != nil {
		return fmt.Errorf("revoke all for store: %w", err)
	}
	return nil
}
