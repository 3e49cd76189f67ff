package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pranshau/Rating-App/internal/domain"
	"github.com/Pranshau/Rating-App/internal/domain/entity"
	"github.com/Pranshau/Rating-App/internal/domain/repository"
)

// RatingsReportGenerator puerto del generador PDF (lo implementa
// pdf.MarotoReportGenerator).
type RatingsReportGenerator interface {
	GenerateRatingsReport(store *entity.Store, ratings []*entity.StoreRating, average decimal.Decimal, count int64) ([]byte, error)
}

// ReportUseCase arma el reporte PDF de calificaciones de una tienda para su
// dueño.
type ReportUseCase struct {
	stores    repository.StoreRepository
	ratings   repository.RatingRepository
	generator RatingsReportGenerator
}

// NewReportUseCase construye el caso de uso del reporte.
func NewReportUseCase(stores repository.StoreRepository, ratings repository.RatingRepository, generator RatingsReportGenerator) *ReportUseCase {
	return &ReportUseCase{stores: stores, ratings: ratings, generator: generator}
}

// BuildStoreReport genera el PDF de calificaciones de una tienda del dueño en
// sesión. ErrForbidden si la tienda no le pertenece.
func (uc *ReportUseCase) BuildStoreReport(ownerID, storeID string) ([]byte, error) {
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
	list, err := uc.ratings.ListForStore(storeID)
	if err != nil {
		return nil, err
	}
	agg, err := uc.ratings.Aggregate(storeID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateRatingsReport(store, list, agg.Rounded(), agg.Count)
}
