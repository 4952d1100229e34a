package models

// Vehicle represents a row of the vehicles table
type Vehicle struct {
	ID                   int    `json:"id" db:"id"`
	Name                 string `json:"name" db:"name"`
	CargoCapacity        string `json:"cargo_capacity" db:"cargo_capacity"`
	Consumables          string `json:"consumables" db:"consumables"`
	CostInCredits        string `json:"cost_in_credits" db:"cost_in_credits"`
	Crew                 string `json:"crew" db:"crew"`
	Length               string `json:"length" db:"length"`
	Manufacturer         string `json:"manufacturer" db:"manufacturer"`
	MaxAtmospheringSpeed string `json:"max_atmosphering_speed" db:"max_atmosphering_speed"`
	Model                string `json:"model" db:"model"`
	Passengers           string `json:"passengers" db:"passengers"`
	VehicleClass         string `json:"vehicle_class" db:"vehicle_class"`
}
