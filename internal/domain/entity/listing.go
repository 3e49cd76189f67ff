package entity

import "github.com/shopspring/decimal"

// Proyecciones de listado: filas ya unidas con sus agregados, tal como las
// consumen los dashboards. No son entidades persistidas.

// StoreDirectoryRow es una fila del listado público de tiendas: datos de la
// tienda, su promedio global y, si hay sesión, la calificación propia del
// usuario que consulta (nil si aún no calificó).
type StoreDirectoryRow struct {
	ID            string
	Name          string
	Address       string
	OwnerName     string
	OverallRating decimal.Decimal
	UserRating    *int
}

// StoreAdminRow es una fila del listado de tiendas del panel admin.
type StoreAdminRow struct {
	ID            string
	Name          string
	Address       string
	OwnerID       string
	OwnerName     string
	OwnerEmail    string
	AverageRating decimal.Decimal
}

// UserAdminRow es una fila del listado de usuarios del panel admin. Para los
// dueños incluye la dirección de su tienda y el promedio de la misma.
type UserAdminRow struct {
	ID            string
	Name          string
	Email         string
	Role          string
	Address       string
	StoreAddress  string
	AverageRating decimal.Decimal
}

// OwnedStore es una tienda del dashboard del dueño, con su conteo y promedio.
type OwnedStore struct {
	ID            string
	Name          string
	Address       string
	TotalRatings  int64
	AverageRating decimal.Decimal
}
