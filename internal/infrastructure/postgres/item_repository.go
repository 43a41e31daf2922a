package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/istore-api/internal/domain"
	"github.com/jhoicas/istore-api/internal/domain/entity"
	"github.com/jhoicas/istore-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, store_id, name, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.StoreID, item.Name, item.Price, item.Quantity,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, store_id, name, price, quantity, created_at, updated_at
		FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.StoreID, &it.Name, &it.Price, &it.Quantity,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return &it, nil
}

// ListByStore lista los artículos de una tienda por nombre.
func (r *ItemRepo) ListByStore(storeID string) ([]*entity.Item, error) {
	query := `
		SELECT id, store_id, name, price, quantity, created_at, updated_at
		FROM items WHERE store_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.StoreID, &it.Name, &it.Price, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza nombre, precio y cantidad de un artículo.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, price = $3, quantity = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Price, item.Quantity, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// DeleteByStore elimina todos los artículos de una tienda.
func (r *ItemRepo) DeleteByStore(storeID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE store_id = $1`, storeID)
	if err != nil {
		return fmt.Errorf("delete items by store: %w", err)
	}
	return nil
}

// IncreaseQuantity suma amount al stock en una sola sentencia atómica
// y devuelve la cantidad resultante.
func (r *ItemRepo) IncreaseQuantity(id string, amount int) (int, error) {
	query := `
		UPDATE items SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1
		RETURNING quantity`
	var newQuantity int
	err := r.q.QueryRow(context.Background(), query, id, amount).Scan(&newQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrItemNotFound
		}
		return 0, fmt.Errorf("increase quantity: %w", err)
	}
	return newQuantity, nil
}

// DecreaseQuantity resta amount al stock con un UPDATE condicional
// (quantity >= amount): la cantidad nunca queda negativa, incluso con
// decrementos concurrentes sobre el mismo artículo. Si la condición no
// se cumple, se lee el stock actual para el mensaje de error.
func (r *ItemRepo) DecreaseQuantity(id string, amount int) (int, error) {
	query := `
		UPDATE items SET quantity = quantity - $2, updated_at = now()
		WHERE id = $1 AND quantity >= $2
		RETURNING quantity`
	var newQuantity int
	err := r.q.QueryRow(context.Background(), query, id, amount).Scan(&newQuantity)
	if err == nil {
		return newQuantity, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("decrease quantity: %w", err)
	}

	// Ninguna fila afectada: artículo inexistente o stock insuficiente.
	var current int
	err = r.q.QueryRow(context.Background(), `SELECT quantity FROM items WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrItemNotFound
		}
		return 0, fmt.Errorf("decrease quantity: %w", err)
	}
	return 0, &domain.InsufficientStockError{Current: current}
}
