package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFavoriteKind(t *testing.T) {
	for _, raw := range []string{"people", "planet", "vehicle"} {
		k, err := ParseFavoriteKind(raw)
		assert.NoError(t, err)
		assert.Equal(t, FavoriteKind(raw), k)
	}

	for _, raw := range []string{"", "planets", "vehicles", "People", "starship"} {
		_, err := ParseFavoriteKind(raw)
		assert.Error(t, err, raw)
	}
}

func TestFavoriteKindTables(t *testing.T) {
	assert.Equal(t, "people", FavoritePeople.Table())
	assert.Equal(t, "planets", FavoritePlanet.Table())
	assert.Equal(t, "vehicles", FavoriteVehicle.Table())
	assert.Equal(t, "", FavoriteKind("starship").Table())

	assert.Equal(t, "Person", FavoritePeople.Label())
	assert.Equal(t, "Planet", FavoritePlanet.Label())
	assert.Equal(t, "Vehicle", FavoriteVehicle.Label())
}

func TestFavoriteRef(t *testing.T) {
	f := Favorite{ID: 1, UserID: 2, FavoriteID: 3, FavoriteType: FavoritePlanet}
	assert.Equal(t, FavoriteRef{Kind: FavoritePlanet, ID: 3}, f.Ref())
	assert.Equal(t, "planet/3", f.Ref().String())
}

func TestFavoriteKindScan(t *testing.T) {
	var k FavoriteKind
	assert.NoError(t, k.Scan("vehicle"))
	assert.Equal(t, FavoriteVehicle, k)

	assert.NoError(t, k.Scan([]byte("people")))
	assert.Equal(t, FavoritePeople, k)

	assert.Error(t, k.Scan("planets"))
	assert.Error(t, k.Scan(int64(1)))
}
