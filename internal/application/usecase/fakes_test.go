package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Pranshau/Rating-App/internal/domain"
	"github.com/Pranshau/Rating-App/internal/domain/entity"
	"github.com/Pranshau/Rating-App/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// adaptadores de postgres: (nil, nil) cuando no existe la fila, una sola fila
// por (user_id, store_id) en calificaciones, promedio 0 para tienda vacía.

// ──────────────────────────────────────────────────────────────────────────────
// fakeUserRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) ListWithStoreRating() ([]*entity.UserAdminRow, error) {
	out := make([]*entity.UserAdminRow, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, &entity.UserAdminRow{
			ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Address: u.Address,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeStoreRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeStoreRepo struct {
	byID map[string]*entity.Store
	// directory filas fijas que devuelve ListDirectory (los tests del listado
	// controlan la proyección, no la recomputan).
	directory []*entity.StoreDirectoryRow
	// createErr fuerza el fallo de Create (tests de atomicidad).
	createErr error
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{byID: make(map[string]*entity.Store)}
}

func (r *fakeStoreRepo) Create(store *entity.Store) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *store
	r.byID[store.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStoreRepo) Exists(id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *fakeStoreRepo) ListDirectory(filter repository.StoreFilter, sortBy repository.StoreSort, callerID string) ([]*entity.StoreDirectoryRow, error) {
	return r.directory, nil
}

func (r *fakeStoreRepo) ListAdmin() ([]*entity.StoreAdminRow, error) {
	out := make([]*entity.StoreAdminRow, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, &entity.StoreAdminRow{ID: s.ID, Name: s.Name, Address: s.Address, OwnerID: s.OwnerID})
	}
	return out, nil
}

func (r *fakeStoreRepo) ListByOwner(ownerID string) ([]*entity.OwnedStore, error) {
	out := []*entity.OwnedStore{}
	for _, s := range r.byID {
		if s.OwnerID == ownerID {
			out = append(out, &entity.OwnedStore{ID: s.ID, Name: s.Name, Address: s.Address})
		}
	}
	return out, nil
}

func (r *fakeStoreRepo) BelongsToOwner(storeID, ownerID string) (bool, error) {
	s, ok := r.byID[storeID]
	return ok && ownerID != "" && s.OwnerID == ownerID, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeRatingRepo
// ──────────────────────────────────────────────────────────────────────────────

type ratingKey struct{ userID, storeID string }

// fakeRatingRepo es seguro para uso concurrente, igual que el adaptador real
// (un *pgxpool.Pool compartido): los tests de envíos simultáneos lo exigen.
type fakeRatingRepo struct {
	mu     sync.Mutex
	byPair map[ratingKey]*entity.Rating
	raters map[string]string // userID → nombre (para ListForStore)
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{
		byPair: make(map[ratingKey]*entity.Rating),
		raters: make(map[string]string),
	}
}

func (r *fakeRatingRepo) Upsert(rating *entity.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ratingKey{rating.UserID, rating.StoreID}
	if existing, ok := r.byPair[key]; ok {
		// Misma semántica que ON CONFLICT DO UPDATE: se conserva la fila
		// original y solo cambian valor y updated_at.
		existing.Value = rating.Value
		existing.UpdatedAt = rating.UpdatedAt
		return nil
	}
	cp := *rating
	r.byPair[key] = &cp
	return nil
}

func (r *fakeRatingRepo) Aggregate(storeID string) (entity.RatingAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, count int64
	for key, rt := range r.byPair {
		if key.storeID == storeID {
			sum += int64(rt.Value)
			count++
		}
	}
	if count == 0 {
		return entity.RatingAggregate{Average: decimal.Zero, Count: 0}, nil
	}
	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(count))
	return entity.RatingAggregate{Average: avg, Count: count}, nil
}

func (r *fakeRatingRepo) ListForStore(storeID string) ([]*entity.StoreRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.StoreRating{}
	for key, rt := range r.byPair {
		if key.storeID != storeID {
			continue
		}
		out = append(out, &entity.StoreRating{
			RaterName: r.raters[key.userID],
			Value:     rt.Value,
			CreatedAt: rt.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeTxRunner
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn contra los mismos fakes y, si falla, restaura el
// estado previo de usuarios y tiendas (emula el rollback de la transacción).
type fakeTxRunner struct {
	users  *fakeUserRepo
	stores *fakeStoreRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(users repository.UserRepository, stores repository.StoreRepository) error) error {
	usersSnap := make(map[string]*entity.User, len(tx.users.byID))
	for k, v := range tx.users.byID {
		cp := *v
		usersSnap[k] = &cp
	}
	storesSnap := make(map[string]*entity.Store, len(tx.stores.byID))
	for k, v := range tx.stores.byID {
		cp := *v
		storesSnap[k] = &cp
	}
	if err := fn(tx.users, tx.stores); err != nil {
		tx.users.byID = usersSnap
		tx.stores.byID = storesSnap
		return err
	}
	return nil
}
