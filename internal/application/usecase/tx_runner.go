package usecase

import (
	"context"

	"github.com/Pranshau/Rating-App/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner; se usa para crear dueño + tienda como una
// sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		stores repository.StoreRepository,
	) error) error
}
