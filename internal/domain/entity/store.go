package entity

import "time"

// Store representa una tienda calificable. OwnerID es una referencia débil a un
// User con rol owner; puede ser vacío (tienda sin dueño asignado).
type Store struct {
	ID        string
	Name      string
	Address   string
	Email     string // contacto opcional
	OwnerID   string // "" = sin dueño
	CreatedAt time.Time
}
