package models

// Person represents a character from the people table
type Person struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Height    string `json:"height" db:"height"`
	Mass      string `json:"mass" db:"mass"`
	HairColor string `json:"hair_color" db:"hair_color"`
	SkinColor string `json:"skin_color" db:"skin_color"`
	EyeColor  string `json:"eye_color" db:"eye_color"`
	BirthYear string `json:"birth_year" db:"birth_year"`
	Gender    string `json:"gender" db:"gender"`
	UserID    *int   `json:"user_id" db:"user_id"` // Optional owner; null when unowned
}
