package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitRatingRequest entrada para calificar una tienda.
// El valor debe ser un entero entre 1 y 5; un segundo envío del mismo usuario
// para la misma tienda sobreescribe el anterior.
type SubmitRatingRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// SubmitRatingResponse salida: el promedio recalculado de la tienda.
type SubmitRatingResponse struct {
	AverageRating decimal.Decimal `json:"averageRating"`
}

// StoreRatingRow una calificación con los datos del calificador (vista del
// dueño de la tienda), más reciente primero.
type StoreRatingRow struct {
	Rating    int       `json:"rating"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
