package entity

// Stock cantidad máxima comprable de un producto en el momento de la consulta.
type Stock struct {
	ID     int
	Amount int
}
