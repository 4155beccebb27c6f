package entity

// Producto registro de inventario. Cantidad nunca es negativa: toda salida se
// valida contra el stock actual dentro de la misma transacción que la persiste.
type Producto struct {
	ID       int64
	Nombre   string
	Cantidad int64
}
