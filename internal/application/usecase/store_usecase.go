package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pranshau/Rating-App/internal/application/dto"
	"github.com/Pranshau/Rating-App/internal/domain"
	"github.com/Pranshau/Rating-App/internal/domain/entity"
	"github.com/Pranshau/Rating-App/internal/domain/repository"
	"github.com/Pranshau/Rating-App/internal/domain/validation"
)

// StoreUseCase listado público con filtros/orden, panel admin y dashboard del
// dueño.
type StoreUseCase struct {
	stores     repository.StoreRepository
	users      repository.UserRepository
	tx         TxRunner
	bcryptCost int
}

// NewStoreUseCase construye el caso de uso de tiendas.
func NewStoreUseCase(stores repository.StoreRepository, users repository.UserRepository, tx TxRunner, bcryptCost int) *StoreUseCase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &StoreUseCase{stores: stores, users: users, tx: tx, bcryptCost: bcryptCost}
}

// SanitizeSort aplica la lista blanca de ordenamiento: campo fuera de
// {id,name,address,created_at} cae a id, orden distinto de "desc" cae a "asc".
// Nunca es un error: un sortField basura ("password") simplemente se ignora.
func SanitizeSort(field, order string) repository.StoreSort {
	switch field {
	case repository.SortByID, repository.SortByName, repository.SortByAddress, repository.SortByCreatedAt:
	default:
		field = repository.SortByID
	}
	if strings.ToLower(order) == repository.OrderDesc {
		order = repository.OrderDesc
	} else {
		order = repository.OrderAsc
	}
	return repository.StoreSort{Field: field, Order: order}
}

// List devuelve el listado público: filtros substring case-insensitive,
// ordenamiento saneado, promedio global por tienda y la calificación propia
// del usuario en sesión (callerID vacío = anónimo). Máximo 200 filas.
func (uc *StoreUseCase) List(q dto.ListStoresQuery, callerID string) (*dto.StoreListResponse, error) {
	filter := repository.StoreFilter{Name: q.Name, Address: q.Address}
	sort := SanitizeSort(q.SortField, q.SortOrder)

	rows, err := uc.stores.ListDirectory(filter, sort, callerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StoreRow{
			ID:            r.ID,
			Name:          r.Name,
			Address:       r.Address,
			OwnerName:     r.OwnerName,
			OverallRating: r.OverallRating.Round(2),
			UserRating:    r.UserRating,
		})
	}
	return &dto.StoreListResponse{Stores: out}, nil
}

// ListAdmin devuelve todas las tiendas con dueño y promedio (panel admin).
func (uc *StoreUseCase) ListAdmin() (*dto.AdminStoreListResponse, error) {
	rows, err := uc.stores.ListAdmin()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminStoreRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AdminStoreRow{
			ID:            r.ID,
			Name:          r.Name,
			Address:       r.Address,
			OwnerID:       r.OwnerID,
			OwnerName:     r.OwnerName,
			OwnerEmail:    r.OwnerEmail,
			AverageRating: r.AverageRating.Round(2),
		})
	}
	return &dto.AdminStoreListResponse{Stores: out}, nil
}

// Create crea una tienda (panel admin). Si vienen los campos ownerName,
// ownerEmail y ownerPassword se crea primero el dueño con rol owner y la
// tienda lo referencia; dueño y tienda se persisten en una sola transacción.
// Un email de dueño ya registrado se rechaza con ErrEmailAlreadyExists (no se
// adjunta la tienda al usuario existente).
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.CreateStoreResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validation.Address(in.Address) {
		return nil, domain.ErrInvalidInput
	}
	if in.Email != "" && !validation.Email(in.Email) {
		return nil, domain.ErrInvalidInput
	}

	withOwner := in.OwnerName != "" && in.OwnerEmail != "" && in.OwnerPassword != ""

	var owner *entity.User
	if withOwner {
		if !validation.Name(in.OwnerName) || !validation.Email(in.OwnerEmail) || !validation.Password(in.OwnerPassword) {
			return nil, domain.ErrInvalidInput
		}
		email := validation.NormalizeEmail(in.OwnerEmail)
		existing, err := uc.users.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.OwnerPassword), uc.bcryptCost)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		owner = &entity.User{
			ID:           uuid.New().String(),
			Name:         strings.TrimSpace(in.OwnerName),
			Email:        email,
			PasswordHash: string(hash),
			Role:         entity.RoleOwner,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Address:   in.Address,
		Email:     validation.NormalizeEmail(in.Email),
		CreatedAt: time.Now(),
	}
	if owner != nil {
		store.OwnerID = owner.ID
	}

	// Dueño y tienda en la misma transacción: no puede quedar un dueño
	// huérfano si la inserción de la tienda falla.
	err := uc.tx.Run(context.Background(), func(users repository.UserRepository, stores repository.StoreRepository) error {
		if owner != nil {
			if err := users.Create(owner); err != nil {
				return err
			}
		}
		return stores.Create(store)
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.CreateStoreResponse{
		Store: dto.StoreResponse{
			ID:      store.ID,
			Name:    store.Name,
			Address: store.Address,
			Email:   store.Email,
			OwnerID: store.OwnerID,
		},
		OwnerID: store.OwnerID,
	}
	return resp, nil
}

// ListByOwner devuelve las tiendas del dueño en sesión con conteo y promedio.
func (uc *StoreUseCase) ListByOwner(ownerID string) ([]dto.OwnedStoreRow, error) {
	rows, err := uc.stores.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OwnedStoreRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.OwnedStoreRow{
			ID:            r.ID,
			Name:          r.Name,
			Address:       r.Address,
			TotalRatings:  r.TotalRatings,
			AverageRating: r.AverageRating.Round(2),
		})
	}
	return out, nil
}

// GetOwned devuelve una tienda del dueño en sesión (para el reporte PDF).
// ErrForbidden si no le pertenece.
func (uc *StoreUseCase) GetOwned(ownerID, storeID string) (*entity.Store, error) {
	if uuid.Validate(storeID) != nil {
		return nil, domain.ErrForbidden
	}
	owned, err := uc.stores.BelongsToOwner(storeID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, domain.ErrForbidden
	}
	store, err := uc.stores.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return store, nil
}
