package models

import "fmt"

// FavoriteKind identifies which table a favorite points into
type FavoriteKind string

const (
	FavoritePeople  FavoriteKind = "people"
	FavoritePlanet  FavoriteKind = "planet"
	FavoriteVehicle FavoriteKind = "vehicle"
)

// FavoriteKinds lists every kind in route order
var FavoriteKinds = []FavoriteKind{FavoritePeople, FavoritePlanet, FavoriteVehicle}

// ParseFavoriteKind validates a raw favorite_type value
func ParseFavoriteKind(s string) (FavoriteKind, error) {
	switch k := FavoriteKind(s); k {
	case FavoritePeople, FavoritePlanet, FavoriteVehicle:
		return k, nil
	}
	return "", fmt.Errorf("unknown favorite type %q", s)
}

// Scan rejects favorite_type values outside the known kinds
func (k *FavoriteKind) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan favorite type: unsupported source %T", src)
	}
	parsed, err := ParseFavoriteKind(raw)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Table returns the entity table the kind resolves to
func (k FavoriteKind) Table() string {
	switch k {
	case FavoritePeople:
		return "people"
	case FavoritePlanet:
		return "planets"
	case FavoriteVehicle:
		return "vehicles"
	}
	return ""
}

// Label is the singular entity name used in messages ("Person not found")
func (k FavoriteKind) Label() string {
	switch k {
	case FavoritePeople:
		return "Person"
	case FavoritePlanet:
		return "Planet"
	case FavoriteVehicle:
		return "Vehicle"
	}
	return "Entity"
}

// FavoriteRef is a reference to one row of people, planets or vehicles
type FavoriteRef struct {
	Kind FavoriteKind
	ID   int
}

func (r FavoriteRef) String() string {
	return fmt.Sprintf("%s/%d", r.Kind, r.ID)
}

// Favorite is a user's bookmark of a person, planet or vehicle
// favorite_id is not a foreign key; favorite_type selects the target table
type Favorite struct {
	ID           int          `json:"id" db:"id"`
	UserID       int          `json:"user_id" db:"user_id"`
	FavoriteID   int          `json:"favorite_id" db:"favorite_id"`
	FavoriteType FavoriteKind `json:"favorite_type" db:"favorite_type"`
	ExtraInfo    *string      `json:"extra_info" db:"extra_info"`
}

// Ref returns the target reference of the favorite
func (f Favorite) Ref() FavoriteRef {
	return FavoriteRef{Kind: f.FavoriteType, ID: f.FavoriteID}
}

// FavoriteRequest is the body of POST /favorites/{kind}/{id} and DELETE /favorite/{kind}/{id}
// UserID is a pointer so a missing field can be told apart from zero
type FavoriteRequest struct {
	UserID    *int    `json:"user_id"`
	ExtraInfo *string `json:"extra_info,omitempty"`
}

// Note: duplicates are allowed; the same user can favorite the same target twice.
// Deleting a person/planet/vehicle does not remove favorites pointing at it.
