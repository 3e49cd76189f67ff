package repository

import "github.com/Pranshau/Rating-App/internal/domain/entity"

// Campos de ordenamiento aceptados por el listado de tiendas. Cualquier otro
// valor cae a SortByID; cualquier orden distinto de "desc" cae a ascendente.
const (
	SortByID        = "id"
	SortByName      = "name"
	SortByAddress   = "address"
	SortByCreatedAt = "created_at"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// StoreFilter filtros de búsqueda del listado (substring, case-insensitive).
type StoreFilter struct {
	Name    string
	Address string
}

// StoreSort ordenamiento ya saneado (ver usecase.SanitizeSort).
type StoreSort struct {
	Field string
	Order string
}

// StoreRepository puerto de persistencia para tiendas.
// GetByID devuelve (nil, nil) cuando la tienda no existe.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Exists(id string) (bool, error)
	// ListDirectory lista con promedio global y, si callerID != "", la
	// calificación propia del usuario. Máximo 200 filas.
	ListDirectory(filter StoreFilter, sort StoreSort, callerID string) ([]*entity.StoreDirectoryRow, error)
	ListAdmin() ([]*entity.StoreAdminRow, error)
	ListByOwner(ownerID string) ([]*entity.OwnedStore, error)
	BelongsToOwner(storeID, ownerID string) (bool, error)
}
