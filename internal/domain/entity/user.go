package entity

import "time"

// User usuario del back-office. El borrado es lógico (Deleted) para no perder
// la referencia created-by de los eventos históricos.
type User struct {
	ID           string
	Login        string
	FirstName    string
	MiddleName   string
	LastName     string
	PasswordHash string
	Email        string
	Deleted      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
