package store

import (
	"context"
	"fmt"

	"starwars-api/models"
)

const (
	userColumns    = "id, email, password, is_active"
	personColumns  = "id, name, height, mass, hair_color, skin_color, eye_color, birth_year, gender, user_id"
	planetColumns  = "id, name, climate, diameter, gravity, orbital_period, population, rotation_period, surface_water, terrain"
	vehicleColumns = "id, name, cargo_capacity, consumables, cost_in_credits, crew, length, manufacturer, max_atmosphering_speed, model, passengers, vehicle_class"
)

// ListPeople returns every person ordered by id; empty when the table is empty
func (s *Store) ListPeople(ctx context.Context) ([]models.Person, error) {
	people, err := listRows[models.Person](ctx, s.db, "SELECT "+personColumns+" FROM people ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}

func (s *Store) GetPerson(ctx context.Context, id int) (models.Person, error) {
	return getRow[models.Person](ctx, s.db, "Person", s.db.Rebind("SELECT "+personColumns+" FROM people WHERE id = ?"), id)
}

func (s *Store) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	planets, err := listRows[models.Planet](ctx, s.db, "SELECT "+planetColumns+" FROM planets ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return planets, nil
}

func (s *Store) GetPlanet(ctx context.Context, id int) (models.Planet, error) {
	return getRow[models.Planet](ctx, s.db, "Planet", s.db.Rebind("SELECT "+planetColumns+" FROM planets WHERE id = ?"), id)
}

func (s *Store) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := listRows[models.Vehicle](ctx, s.db, "SELECT "+vehicleColumns+" FROM vehicles ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *Store) GetVehicle(ctx context.Context, id int) (models.Vehicle, error) {
	return getRow[models.Vehicle](ctx, s.db, "Vehicle", s.db.Rebind("SELECT "+vehicleColumns+" FROM vehicles WHERE id = ?"), id)
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := listRows[models.User](ctx, s.db, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id int) (models.User, error) {
	return getRow[models.User](ctx, s.db, "User", s.db.Rebind("SELECT "+userColumns+" FROM users WHERE id = ?"), id)
}
