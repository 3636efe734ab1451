package entity

// User cuenta de propietario gestionada por el proveedor de auth (solo lectura).
type User struct {
	ID    string
	Email string
}
