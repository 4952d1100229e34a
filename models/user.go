package models

// User represents an account that can own people and keep favorites
// Password is stored as-is by the seeding side; never return it in JSON responses
type User struct {
	ID       int    `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
	IsActive bool   `json:"-" db:"is_active"`
}
