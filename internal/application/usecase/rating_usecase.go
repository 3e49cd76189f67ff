package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pranshau/Rating-App/internal/application/dto"
	"github.com/Pranshau/Rating-App/internal/domain"
	"github.com/Pranshau/Rating-App/internal/domain/entity"
	"github.com/Pranshau/Rating-App/internal/domain/repository"
)

// RatingUseCase el núcleo de la aplicación: registro de calificaciones con
// upsert atómico y agregados recalculados en cada lectura.
type RatingUseCase struct {
	stores  repository.StoreRepository
	ratings repository.RatingRepository
}

// NewRatingUseCase construye el caso de uso con sus puertos de persistencia.
func NewRatingUseCase(stores repository.StoreRepository, ratings repository.RatingRepository) *RatingUseCase {
	return &RatingUseCase{stores: stores, ratings: ratings}
}

// Submit registra (o sobreescribe) la calificación de un usuario para una
// tienda y devuelve el promedio recalculado.
//
// Reglas:
//   - value debe ser un entero en [1,5] → ErrInvalidRating.
//   - la tienda debe existir → ErrStoreNotFound.
//   - la escritura es un upsert atómico sobre la constraint única
//     (user_id, store_id): envíos concurrentes del mismo par dejan exactamente
//     una fila con uno de los dos valores.
func (uc *RatingUseCase) Submit(userID, storeID string, value int) (decimal.Decimal, error) {
	if value < 1 || value > 5 {
		return decimal.Zero, domain.ErrInvalidRating
	}
	// Un id que no es UUID no puede ser una tienda; se corta aquí antes de que
	// el cast a uuid en Postgres lo rechace con 22P02.
	if uuid.Validate(storeID) != nil {
		return decimal.Zero, domain.ErrStoreNotFound
	}
	exists, err := uc.stores.Exists(storeID)
	if err != nil {
		return decimal.Zero, err
	}
	if !exists {
		return decimal.Zero, domain.ErrStoreNotFound
	}

	now := time.Now()
	rating := &entity.Rating{
		ID:        uuid.New().String(),
		UserID:    userID,
		StoreID:   storeID,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.ratings.Upsert(rating); err != nil {
		return decimal.Zero, err
	}

	agg, err := uc.ratings.Aggregate(storeID)
	if err != nil {
		return decimal.Zero, err
	}
	return agg.Rounded(), nil
}

// Average devuelve el promedio de una tienda con dos decimales; 0.00 si no
// tiene calificaciones.
func (uc *RatingUseCase) Average(storeID string) (decimal.Decimal, error) {
	agg, err := uc.ratings.Aggregate(storeID)
	if err != nil {
		return decimal.Zero, err
	}
	return agg.Rounded(), nil
}

// ListForOwner devuelve las calificaciones de una tienda del dueño en sesión,
// más reciente primero. ErrForbidden si la tienda no le pertenece (o no existe:
// no se revela la diferencia).
func (uc *RatingUseCase) ListForOwner(ownerID, storeID string) ([]dto.StoreRatingRow, error) {
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
	list, err := uc.ratings.ListForStore(storeID)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StoreRatingRow, 0, len(list))
	for _, r := range list {
		rows = append(rows, dto.StoreRatingRow{
			Rating:    r.Value,
			Name:      r.RaterName,
			Email:     r.RaterEmail,
			CreatedAt: r.CreatedAt,
		})
	}
	return rows, nil
}
