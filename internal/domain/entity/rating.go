package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rating es la calificación de un usuario para una tienda.
// Invariante: a lo sumo una fila por (UserID, StoreID); un segundo envío
// sobreescribe el valor existente (upsert), nunca crea un duplicado.
type Rating struct {
	ID        string
	UserID    string
	StoreID   string
	Value     int // 1..5
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreRating es una calificación enriquecida con los datos del calificador,
// para el listado que ve el dueño de la tienda.
type StoreRating struct {
	RaterName  string
	RaterEmail string
	Value      int
	CreatedAt  time.Time
}

// RatingAggregate es el agregado derivado de una tienda: promedio y conteo.
// Se recalcula en cada lectura, nunca se cachea.
type RatingAggregate struct {
	Average decimal.Decimal
	Count   int64
}

// Rounded devuelve el promedio con dos decimales (redondeo, no truncamiento).
func (a RatingAggregate) Rounded() decimal.Decimal {
	return a.Average.Round(2)
}
