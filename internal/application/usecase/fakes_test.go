package usecase_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/istore-api/internal/application/auth"
	"github.com/jhoicas/istore-api/internal/domain"
	"github.com/jhoicas/istore-api/internal/domain/entity"
	"github.com/jhoicas/istore-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia. Sin transacciones reales:
// el fakeTxRunner pasa los mismos fakes al callback.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) Count() (int, error) { return len(r.users), nil }

func (r *fakeUserRepo) Update(user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: map[string]*entity.Store{}}
}

func (r *fakeStoreRepo) Create(store *entity.Store) error {
	cp := *store
	r.stores[store.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStoreRepo) NameExists(name string) (bool, error) {
	for _, s := range r.stores {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStoreRepo) List() ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(r.stores))
	for _, s := range r.stores {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeStoreRepo) Delete(id string) error {
	delete(r.stores, id)
	return nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) ListByStore(storeID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if it.StoreID == storeID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) DeleteByStore(storeID string) error {
	for id, it := range r.items {
		if it.StoreID == storeID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeItemRepo) IncreaseQuantity(id string, amount int) (int, error) {
	it, ok := r.items[id]
	if !ok {
		return 0, domain.ErrItemNotFound
	}
	it.Quantity += amount
	return it.Quantity, nil
}

// DecreaseQuantity replica el contrato del UPDATE condicional: nunca deja
// la cantidad negativa y reporta el stock actual al fallar.
func (r *fakeItemRepo) DecreaseQuantity(id string, amount int) (int, error) {
	it, ok := r.items[id]
	if !ok {
		return 0, domain.ErrItemNotFound
	}
	if it.Quantity < amount {
		return 0, &domain.InsufficientStockError{Current: it.Quantity}
	}
	it.Quantity -= amount
	return it.Quantity, nil
}

type accessKey struct{ userID, storeID string }

type fakeAccessRepo struct {
	grants map[accessKey]bool
	stores *fakeStoreRepo
	users  *fakeUserRepo
}

func newFakeAccessRepo(stores *fakeStoreRepo, users *fakeUserRepo) *fakeAccessRepo {
	return &fakeAccessRepo{grants: map[accessKey]bool{}, stores: stores, users: users}
}

func (r *fakeAccessRepo) Grant(userID, storeID string) error {
	r.grants[accessKey{userID, storeID}] = true // idempotente
	return nil
}

func (r *fakeAccessRepo) Revoke(userID, storeID string) error {
	delete(r.grants, accessKey{userID, storeID})
	return nil
}

func (r *fakeAccessRepo) HasAccess(userID, storeID string) (bool, error) {
	return r.grants[accessKey{userID, storeID}], nil
}

func (r *fakeAccessRepo) ListStoresForUser(userID string) ([]*entity.Store, error) {
	var out []*entity.Store
	for k := range r.grants {
		if k.userID == userID {
			if s, _ := r.stores.GetByID(k.storeID); s != nil {
				out = append(out, s)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeAccessRepo) ListUsersForStore(storeID string) ([]*entity.User, error) {
	var out []*entity.User
	for k := range r.grants {
		if k.storeID == storeID {
			if u, _ := r.users.GetByID(k.userID); u != nil {
				out = append(out, u)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pseudo < out[j].Pseudo })
	return out, nil
}

func (r *fakeAccessRepo) RevokeAllForUser(userID string) error {
	for k := range r.grants {
		if k.userID == userID {
			delete(r.grants, k)
		}
	}
	return nil
}

func (r *fakeAccessRepo) RevokeAllForStore(storeID string) error {
	for k := range r.grants {
		if k.storeID == storeID {
			delete(r.grants, k)
		}
	}
	return nil
}

type fakeWhitelistRepo struct {
	entries map[string]*entity.WhitelistEntry
}

func newFakeWhitelistRepo() *fakeWhitelistRepo {
	return &fakeWhitelistRepo{entries: map[string]*entity.WhitelistEntry{}}
}

func (r *fakeWhitelistRepo) Create(entry *entity.WhitelistEntry) error {
	for _, e := range r.entries {
		if strings.EqualFold(e.Email, entry.Email) {
			return domain.ErrDuplicate
		}
	}
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *fakeWhitelistRepo) IsWhitelisted(email string) (bool, error) {
	for _, e := range r.entries {
		if strings.EqualFold(e.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeWhitelistRepo) List() ([]*entity.WhitelistEntry, error) {
	out := make([]*entity.WhitelistEntry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *fakeWhitelistRepo) Delete(id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeWhitelistRepo) DeleteByEmail(email string) error {
	for id, e := range r.entries {
		if strings.EqualFold(e.Email, email) {
			delete(r.entries, id)
		}
	}
	return nil
}

// fakeTxRunner implementa auth.TxRunner y usecase.TxRunner sin transacción:
// pasa los mismos fakes al callback.
type fakeTxRunner struct {
	users     *fakeUserRepo
	whitelist *fakeWhitelistRepo
	stores    *fakeStoreRepo
	items     *fakeItemRepo
	access    *fakeAccessRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	whitelistRepo repository.WhitelistRepository,
) error) error {
	return fn(r.users, r.whitelist)
}

func (r *fakeTxRunner) RunStores(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	itemRepo repository.ItemRepository,
	accessRepo repository.StoreAccessRepository,
) error) error {
	return fn(r.stores, r.items, r.access)
}

func (r *fakeTxRunner) RunUsers(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	accessRepo repository.StoreAccessRepository,
) error) error {
	return fn(r.users, r.access)
}

// testEnv agrupa fakes y casos de uso listos para un test.
//
// Los helpers seed* insertan entidades directo en los fakes, sin pasar por
// los casos de uso, para que cada test prepare su estado sin ruido.
type testEnv struct {
	users     *fakeUserRepo
	stores    *fakeStoreRepo
	items     *fakeItemRepo
	access    *fakeAccessRepo
	whitelist *fakeWhitelistRepo
	tx        *fakeTxRunner
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	stores := newFakeStoreRepo()
	items := newFakeItemRepo()
	access := newFakeAccessRepo(stores, users)
	whitelist := newFakeWhitelistRepo()
	return &testEnv{
		users:     users,
		stores:    stores,
		items:     items,
		access:    access,
		whitelist: whitelist,
		tx: &fakeTxRunner{
			users:     users,
			whitelist: whitelist,
			stores:    stores,
			items:     items,
			access:    access,
		},
	}
}

func (e *testEnv) seedUser(t *testing.T, email, role string) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(email),
		Pseudo:       strings.SplitN(email, "@", 2)[0],
		PasswordHash: "$2a$12$hash-de-test",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, e.users.Create(u))
	return u
}

func (e *testEnv) seedStore(t *testing.T, name string) *entity.Store {
	t.Helper()
	now := time.Now()
	s := &entity.Store{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, e.stores.Create(s))
	return s
}

func (e *testEnv) seedItem(t *testing.T, storeID, name string, price string, quantity int) *entity.Item {
	t.Helper()
	now := time.Now()
	it := &entity.Item{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, e.items.Create(it))
	return it
}

func actorFor(u *entity.User) auth.Actor {
	return auth.Actor{ID: u.ID, Email: u.Email, Role: u.Role}
}
