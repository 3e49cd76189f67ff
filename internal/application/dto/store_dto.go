package dto

import "github.com/shopspring/decimal"

// ListStoresQuery filtros y ordenamiento del listado público.
// sortField fuera de {id,name,address,created_at} cae a id; sortOrder distinto
// de "desc" cae a ascendente. Nunca es un error.
type ListStoresQuery struct {
	Name      string `query:"name"`
	Address   string `query:"address"`
	SortField string `query:"sortField"`
	SortOrder string `query:"sortOrder"`
}

// CreateStoreRequest entrada del panel admin. Los campos owner* son opcionales
// en bloque: si vienen los tres, se crea el dueño junto con la tienda.
type CreateStoreRequest struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"omitempty,max=400"`
	Email         string `json:"email" validate:"omitempty,email"`
	OwnerName     string `json:"ownerName"`
	OwnerEmail    string `json:"ownerEmail"`
	OwnerPassword string `json:"ownerPassword"`
}

// StoreRow fila del listado público: promedio global y calificación propia
// del usuario en sesión (null si no calificó o no hay sesión).
type StoreRow struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	OwnerName     string          `json:"owner_name,omitempty"`
	OverallRating decimal.Decimal `json:"overall_rating"`
	UserRating    *int            `json:"user_rating"`
}

// StoreListResponse salida del listado público.
type StoreListResponse struct {
	Stores []StoreRow `json:"stores"`
}

// AdminStoreRow fila del panel admin de tiendas.
type AdminStoreRow struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	OwnerID       string          `json:"owner_id,omitempty"`
	OwnerName     string          `json:"owner_name,omitempty"`
	OwnerEmail    string          `json:"owner_email,omitempty"`
	AverageRating decimal.Decimal `json:"average_rating"`
}

// AdminStoreListResponse salida del panel admin de tiendas.
type AdminStoreListResponse struct {
	Stores []AdminStoreRow `json:"stores"`
}

// StoreResponse salida de una tienda recién creada.
type StoreResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email,omitempty"`
	OwnerID string `json:"owner_id,omitempty"`
}

// CreateStoreResponse salida de la creación admin: tienda + id del dueño
// creado (vacío si la tienda quedó sin dueño).
type CreateStoreResponse struct {
	Store   StoreResponse `json:"store"`
	OwnerID string        `json:"owner_id,omitempty"`
}

// OwnedStoreRow fila del dashboard del dueño.
type OwnedStoreRow struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	TotalRatings  int64           `json:"total_ratings"`
	AverageRating decimal.Decimal `json:"average_rating"`
}
