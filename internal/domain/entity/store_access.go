package entity

import "time"

// StoreAccess autoriza a un usuario no-admin a operar sobre una tienda.
// Los admin tienen acceso implícito a todas las tiendas, sin fila de acceso.
type StoreAccess struct {
	UserID    string
	StoreID   string
	CreatedAt time.Time
}
