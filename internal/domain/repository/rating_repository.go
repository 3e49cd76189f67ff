package repository

import "github.com/Pranshau/Rating-App/internal/domain/entity"

// RatingRepository puerto de persistencia para calificaciones.
type RatingRepository interface {
	// Upsert inserta la calificación o, si ya existe una fila para
	// (UserID, StoreID), sobreescribe su valor y updated_at. Debe ser una
	// escritura condicional atómica: dos envíos concurrentes del mismo par
	// nunca producen dos filas ni pierden una de las dos escrituras.
	Upsert(rating *entity.Rating) error
	// Aggregate devuelve promedio y conteo de una tienda. Promedio 0 (nunca
	// NULL/NaN) cuando la tienda no tiene calificaciones.
	Aggregate(storeID string) (entity.RatingAggregate, error)
	// ListForStore devuelve las calificaciones con datos del calificador,
	// más reciente primero.
	ListForStore(storeID string) ([]*entity.StoreRating, error)
}
