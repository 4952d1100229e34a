package dbtest

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func insert(t testing.TB, db *sqlx.DB, query string, args ...interface{}) int {
	t.Helper()
	var id int
	require.NoError(t, db.QueryRowx(db.Rebind(query), args...).Scan(&id))
	return id
}

// InsertUser adds an active user and returns its id.
func InsertUser(t testing.TB, db *sqlx.DB, email string) int {
	return insert(t, db, "INSERT INTO users (email, password, is_active) VALUES (?, ?, ?) RETURNING id",
		email, "password123", true)
}

// InsertPerson adds a person with fixed attributes and returns its id.
func InsertPerson(t testing.TB, db *sqlx.DB, name string) int {
	return insert(t, db, `INSERT INTO people (name, height, mass, hair_color, skin_color, eye_color, birth_year, gender)
		VALUES (?, '172', '77', 'blond', 'fair', 'blue', '19BBY', 'male') RETURNING id`, name)
}

// InsertPlanet adds a planet with fixed attributes and returns its id.
func InsertPlanet(t testing.TB, db *sqlx.DB, name string) int {
	return insert(t, db, `INSERT INTO planets (name, climate, diameter, gravity, orbital_period, population, rotation_period, surface_water, terrain)
		VALUES (?, 'arid', '10465', '1 standard', '304', '200000', '23', '1', 'desert') RETURNING id`, name)
}

// InsertVehicle adds a vehicle with fixed attributes and returns its id.
func InsertVehicle(t testing.TB, db *sqlx.DB, name string) int {
	return insert(t, db, `INSERT INTO vehicles (name, cargo_capacity, consumables, cost_in_credits, crew, length, manufacturer, max_atmosphering_speed, model, passengers, vehicle_class)
		VALUES (?, '50000', '2 months', '150000', '46', '36.8', 'Corellia Mining Corporation', '30', 'Digger Crawler', '30', 'wheeled') RETURNING id`, name)
}

// CountFavorites returns the number of rows in the favorites table.
func CountFavorites(t testing.TB, db *sqlx.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM favorites"))
	return n
}
