package postgres

import (
	"context"
	"fmt"

	"github.com/Pranshau/Rating-App/internal/domain/entity"
	"github.com/Pranshau/Rating-App/internal/domain/repository"
)

var _ repository.RatingRepository = (*RatingRepo)(nil)

// RatingRepo implementación del puerto RatingRepository sobre PostgreSQL.
type RatingRepo struct {
	q Querier
}

// NewRatingRepository construye el adaptador de calificaciones. Pasar pool o tx (Querier).
func NewRatingRepository(q Querier) *RatingRepo {
	return &RatingRepo{q: q}
}

// Upsert inserta o sobreescribe la calificación de (user_id, store_id).
// La constraint única sobre el par resuelve la carrera: dos envíos
// concurrentes terminan en una sola fila con el valor de uno de los dos,
// nunca en dos filas ni en cero. created_at se conserva en el update.
func (r *RatingRepo) Upsert(rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, user_id, store_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		rating.ID, rating.UserID, rating.StoreID, rating.Value, rating.CreatedAt, rating.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// Aggregate devuelve promedio y conteo de una tienda. El promedio es 0 (nunca
// NULL) cuando no hay calificaciones; se recalcula en cada llamada.
func (r *RatingRepo) Aggregate(storeID string) (entity.RatingAggregate, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)::numeric, COUNT(*)
		FROM ratings WHERE store_id = $1`
	var agg entity.RatingAggregate
	err := r.q.QueryRow(context.Background(), query, storeID).Scan(&agg.Average, &agg.Count)
	if err != nil {
		return entity.RatingAggregate{}, fmt.Errorf("aggregate ratings: %w", err)
	}
	return agg, nil
}

// ListForStore devuelve las calificaciones de una tienda con nombre y email
// del calificador, más reciente primero.
func (r *RatingRepo) ListForStore(storeID string) ([]*entity.StoreRating, error) {
	query := `
		SELECT rt.rating, rt.created_at, u.name, u.email
		FROM ratings rt
		JOIN users u ON rt.user_id = u.id
		WHERE rt.store_id = $1
		ORDER BY rt.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreRating
	for rows.Next() {
		var sr entity.StoreRating
		if err := rows.Scan(&sr.Value, &sr.CreatedAt, &sr.RaterName, &sr.RaterEmail); err != nil {
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		list = append(list, &sr)
	}
	return list, rows.Err()
}
