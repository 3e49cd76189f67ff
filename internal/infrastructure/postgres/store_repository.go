package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Pranshau/Rating-App/internal/domain/entity"
	"github.com/Pranshau/Rating-App/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de tiendas. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una nueva tienda. OwnerID vacío se guarda como NULL.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, address, email, owner_id, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5::text, '')::uuid, $6)`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.Address, store.Email, store.OwnerID, store.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID. Devuelve (nil, nil) si no existe.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `
		SELECT id, name, address, COALESCE(email, ''), COALESCE(owner_id::text, ''), created_at
		FROM stores WHERE id = $1`
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Address, &s.Email, &s.OwnerID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by id: %w", err)
	}
	return &s, nil
}

// Exists verifica si existe una tienda con ese ID.
func (r *StoreRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("store exists: %w", err)
	}
	return exists, nil
}

// orderByClause traduce el sort saneado a SQL. Solo valores de la lista blanca
// llegan aquí (ver usecase.SanitizeSort); el switch es la última defensa para
// que jamás se interpole texto del cliente en el ORDER BY.
func orderByClause(sort repository.StoreSort) string {
	field := "s.id"
	switch sort.Field {
	case repository.SortByName:
		field = "s.name"
	case repository.SortByAddress:
		field = "s.address"
	case repository.SortByCreatedAt:
		field = "s.created_at"
	}
	dir := "ASC"
	if sort.Order == repository.OrderDesc {
		dir = "DESC"
	}
	return field + " " + dir
}

// ListDirectory lista tiendas con filtros substring (ILIKE), promedio global y
// la calificación propia de callerID (NULL si no calificó o callerID vacío).
// El resultado se limita a 200 filas.
func (r *StoreRepo) ListDirectory(filter repository.StoreFilter, sort repository.StoreSort, callerID string) ([]*entity.StoreDirectoryRow, error) {
	var where []string
	var params []any
	i := 1
	if filter.Name != "" {
		where = append(where, fmt.Sprintf("s.name ILIKE $%d", i))
		params = append(params, "%"+filter.Name+"%")
		i++
	}
	if filter.Address != "" {
		where = append(where, fmt.Sprintf("s.address ILIKE $%d", i))
		params = append(params, "%"+filter.Address+"%")
		i++
	}

	userRatingJoin := "LEFT JOIN (SELECT NULL::uuid AS store_id, NULL::int AS user_rating) ur ON ur.store_id = s.id"
	if callerID != "" {
		userRatingJoin = fmt.Sprintf(
			"LEFT JOIN (SELECT store_id, rating AS user_rating FROM ratings WHERE user_id = $%d) ur ON ur.store_id = s.id", i)
		params = append(params, callerID)
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT
			s.id, s.name, s.address,
			COALESCE(u.name, '') AS owner_name,
			COALESCE(avg_r.avg, 0)::numeric AS overall_rating,
			ur.user_rating
		FROM stores s
		LEFT JOIN users u ON s.owner_id = u.id
		LEFT JOIN (SELECT store_id, AVG(rating) AS avg FROM ratings GROUP BY store_id) avg_r ON avg_r.store_id = s.id
		%s
		%s
		ORDER BY %s
		LIMIT 200`, userRatingJoin, whereClause, orderByClause(sort))

	rows, err := r.q.Query(context.Background(), query, params...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreDirectoryRow
	for rows.Next() {
		var row entity.StoreDirectoryRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Address, &row.OwnerName, &row.OverallRating, &row.UserRating); err != nil {
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// ListAdmin lista todas las tiendas con dueño y promedio (panel admin).
func (r *StoreRepo) ListAdmin() ([]*entity.StoreAdminRow, error) {
	query := `
		SELECT
			s.id, s.name, s.address,
			COALESCE(u.id::text, '') AS owner_id,
			COALESCE(u.name, '') AS owner_name,
			COALESCE(u.email, '') AS owner_email,
			COALESCE(avg_r.avg, 0)::numeric AS average_rating
		FROM stores s
		LEFT JOIN users u ON s.owner_id = u.id
		LEFT JOIN (SELECT store_id, AVG(rating)::numeric AS avg FROM ratings GROUP BY store_id) avg_r ON avg_r.store_id = s.id
		ORDER BY s.created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stores admin: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreAdminRow
	for rows.Next() {
		var row entity.StoreAdminRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Address, &row.OwnerID, &row.OwnerName, &row.OwnerEmail, &row.AverageRating); err != nil {
			return nil, fmt.Errorf("scan admin store row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// ListByOwner lista las tiendas de un dueño con conteo y promedio.
func (r *StoreRepo) ListByOwner(ownerID string) ([]*entity.OwnedStore, error) {
	query := `
		SELECT
			s.id, s.name, s.address,
			COUNT(rt.id) AS total_ratings,
			COALESCE(AVG(rt.rating), 0)::numeric AS average_rating
		FROM stores s
		LEFT JOIN ratings rt ON rt.store_id = s.id
		WHERE s.owner_id = $1
		GROUP BY s.id, s.name, s.address
		ORDER BY s.created_at`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list stores by owner: %w", err)
	}
	defer rows.Close()
	var list []*entity.OwnedStore
	for rows.Next() {
		var row entity.OwnedStore
		if err := rows.Scan(&row.ID, &row.Name, &row.Address, &row.TotalRatings, &row.AverageRating); err != nil {
			return nil, fmt.Errorf("scan owned store row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// BelongsToOwner verifica si la tienda pertenece al dueño.
func (r *StoreRepo) BelongsToOwner(storeID, ownerID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1 AND owner_id = $2)`, storeID, ownerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("store belongs to owner: %w", err)
	}
	return exists, nil
}
