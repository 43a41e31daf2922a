package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/istore-api/internal/application/dto"
	"github.com/jhoicas/istore-api/internal/application/usecase"
	"github.com/jhoicas/istore-api/internal/domain"
	"github.com/jhoicas/istore-api/internal/domain/entity"
)

func TestCreateItem_SoloAdmin(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin@x.com", entity.RoleAdmin)
	bob := env.seedUser(t, "bob@x.com", entity.RoleEmployee)
	store := env.seedStore(t, "Central")
	uc := usecase.NewInventoryUseCase(env.items, env.access)

	req := dto.CreateItemRequest{StoreID: store.ID, Name: "Teclado", Price: "19.99", Quantity: "10"}

	_, err := uc.CreateItem(actorFor(bob), req)
	var perm *domain.PermissionError
	require.ErrorAs(t, err, &perm)

	item, err := uc.CreateItem(actorFor(admin), req)
	require.NoError(t, err)
	assert.Equal(t, "Teclado", item.Name)
	assert.Equal(t, 10, item.Quantity)
	assert.Equal(t, "19.99", item.Price.String())
}

func TestCreateItem_ValidaPrecioYCantidad(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin@x.com", entity.RoleAdmin)
	store := env.seedStore(t, "Central")
	uc := usecase.NewInventoryUseCase(env.items, env.access)

	tests := []struct {
		name    string
		req     dto.CreateItemRequest
		mensaje string
	}{
		{
			name:    "precio negativo",
			req:     dto.CreateItemRequest{StoreID: store.ID, Name: "Mouse", Price: "-5", Quantity: "1"},
			mensaje: "el precio no puede ser negativo",
		},
		{
			name:    "precio no numérico",
			req:     dto.CreateItemRequest{StoreID: store.ID, Name: "Mouse", Price: "gratis", Quantity: "1"},
			mensaje: "el precio debe ser un número válido",
		},
		{
			name:    "cantidad negativa",
			req:     dto.CreateItemRequest{StoreID: store.ID, Name: "Mouse", Price: "5", Quantity: "-1"},
			mensaje: "la cantidad no puede ser negativa",
		},
		{
			name:    "cantidad no entera",
			req:     dto.CreateItemRequest{StoreID: store.ID, Name: "Mouse", Price: "5", Quantity: "2.5"},
			mensaje: "la cantidad debe ser un número entero",
		},
		{
			name:    "nombre requerido",
			req:     dto.CreateItemRequest{StoreID: store.ID, Name: "  ", Price: "5", Quantity: "1"},
			mensaje: "el nombre del artículo es requerido",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateItem(actorFor(admin), tt.req)
			require.Error(t, err)
			var v *domain.ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.mensaje, v.Message)
		})
	}
}

func TestItemsByStore_SinAccesoDevuelveListaVacia(t *testing.T) {
	env := newTestEnv()
	bob := env.seedUser(t, "bob@x.com", entity.RoleEmployee)
	store := env.seedStore(t, "Central")
	env.seedItem(t, store.ID, "Teclado", "19.99", 10)
	uc := usecase.NewInventoryUseCase(env.items, env.access)

	// Denegación suave: sin acceso no hay error, solo lista vacía.
	items, err := uc.ItemsByStore(actorFor(bob), store.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, env.access.Grant(bob.ID, store.ID))
	items, err = uc.ItemsByStore(actorFor(bob), store.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestGetItem_SinAccesoSeComportaComoInexistente(t *testing.T) {
	env := newTestEnv()
	bob := env.seedUser(t, "bob@x.com", entity.RoleEmployee)
	store := env.seedStore(t, "Central")
	item := env.seedItem(t, store.ID, "Teclado", "19.99", 10)
	uc := usecase.NewInventoryUseCase(env.items, env.access)

	_, err := uc.GetItem(actorFor(bob), item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = uc.GetItem(actorFor(bob), "no-existe")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestIncreaseStock_RequiereCantidadPositiva(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin@x.com", entity.RoleAdmin)
	store := env.seedStore(t, "Central")
	item := env.seedItem(t, store.ID, "Teclado", "19.99", 10)
	uc := usecase.NewInventoryUseCase(env.items, env.access)

	for _, amount := range []int{0, -3} {
		_, err := uc.IncreaseStock(actorFor(admin), item.ID, amount)
		require.Error(t, err)
		var v *domain.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Equal(t, "la cantidad debe ser positiva", v.Message)
	}

	resp, err := uc.IncreaseStock(actorFor(admin), item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, "stock aumentado en 5 unidades", resp.Message)
	assert.Equal(t, 15, resp.Item.Quantity)
}

func TestDecreaseStock_InsuficienteNoCambiaCantidad(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin@x.com", entity.RoleAdmin)
	store := env.seedStore(t, "Central")
	item := env.seedItem(t, store.ID, "Teclado", "19.99", 10)
	uc := usecase.NewInventoryUseCase(env.items, env.access)

	_, err := uc.DecreaseStock(actorFor(admin), item.ID, 15)
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 10, stockErr.Current)
	assert.Equal(t, "stock insuficiente, stock actual: 10", err.Error())

	// La cantidad no se tocó.
	got, err := env.items.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
}

func TestDecreaseStock_HastaCero(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin@x.com", entity.RoleAdmin)
	store := env.seedStore(t, "Central")
	item := env.seedItem(t, store.ID, "Teclado", "19.99", 10)
	uc := usecase.NewInventoryUseCase(env.items, env.access)

	resp, err := uc.DecreaseStock(actorFor(admin), item.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, "stock reducido en 10 unidades", resp.Message)
	assert.Equal(t, 0, resp.Item.Quantity)

	// Con stock cero cualquier resta falla.
	_, err = uc.DecreaseStock(actorFor(admin), item.ID, 1)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockErr.Current)
}

func TestStock_EmpleadoSinAccesoRechazado(t *testing.T) {
	env := newTestEnv()
	bob := env.seedUser(t, "bob@x.com", entity.RoleEmployee)
	store := env.seedStore(t, "Central")
	item := env.seedItem(t, store.ID, "Teclado", "19.99", 10)
	uc := usecase.NewInventoryUseCase(env.items, env.access)

	_, err := uc.DecreaseStock(actorFor(bob), item.ID, 1)
	var perm *domain.PermissionError
	require.ErrorAs(t, err, &perm)
	assert.Equal(t, "no tienes acceso a esta tienda", perm.Message)

	require.NoError(t, env.access.Grant(bob.ID, store.ID))
	resp, err := uc.DecreaseStock(actorFor(bob), item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, resp.Item.Quantity)
}

func TestUpdateItem_SoloAdmin(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin@x.com", entity.RoleAdmin)
	bob := env.seedUser(t, "bob@x.com", entity.RoleEmployee)
	store := env.seedStore(t, "Central")
	item := env.seedItem(t, store.ID, "Teclado", "19.99", 10)
	uc := usecase.NewInventoryUseCase(env.items, env.access)

	req := dto.UpdateItemRequest{Name: "Teclado mecánico", Price: "39.90", Quantity: "7"}

	_, err := uc.UpdateItem(actorFor(bob), item.ID, req)
	var perm *domain.PermissionError
	require.ErrorAs(t, err, &perm)

	updated, err := uc.UpdateItem(actorFor(admin), item.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Teclado mecánico", updated.Name)
	assert.Equal(t, 7, updated.Quantity)
}

func TestDeleteItem_AdminElimina(t *testing.T) {
	env := newTestEnv()
	admin := env.seedUser(t, "admin@x.com", entity.RoleAdmin)
	store := env.seedStore(t, "Central")
	item := env.seedItem(t, store.ID, "Teclado", "19.99", 10)
	uc := usecase.NewInventoryUseCase(env.items, env.access)

	require.NoError(t, uc.DeleteItem(actorFor(admin), item.ID))

	err := uc.DeleteItem(actorFor(admin), item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
