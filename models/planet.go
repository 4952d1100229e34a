package models

// Planet represents a row of the planets table
type Planet struct {
	ID             int    `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Climate        string `json:"climate" db:"climate"`
	Diameter       string `json:"diameter" db:"diameter"`
	Gravity        string `json:"gravity" db:"gravity"`
	OrbitalPeriod  string `json:"orbital_period" db:"orbital_period"`
	Population     string `json:"population" db:"population"`
	RotationPeriod string `json:"rotation_period" db:"rotation_period"`
	SurfaceWater   string `json:"surface_water" db:"surface_water"`
	Terrain        string `json:"terrain" db:"terrain"`
}
