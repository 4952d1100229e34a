package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"starwars-api/models"

	"github.com/jmoiron/sqlx"
)

const favoriteColumns = "id, user_id, favorite_id, favorite_type, extra_info"

// Resolve loads the person, planet or vehicle a reference points at.
// The returned value is a models.Person, models.Planet or models.Vehicle.
func (s *Store) Resolve(ctx context.Context, ref models.FavoriteRef) (interface{}, error) {
	return s.resolve(ctx, s.db, ref)
}

func (s *Store) resolve(ctx context.Context, q sqlx.QueryerContext, ref models.FavoriteRef) (interface{}, error) {
	switch ref.Kind {
	case models.FavoritePeople:
		return getRow[models.Person](ctx, q, ref.Kind.Label(), s.db.Rebind("SELECT "+personColumns+" FROM "+ref.Kind.Table()+" WHERE id = ?"), ref.ID)
	case models.FavoritePlanet:
		return getRow[models.Planet](ctx, q, ref.Kind.Label(), s.db.Rebind("SELECT "+planetColumns+" FROM "+ref.Kind.Table()+" WHERE id = ?"), ref.ID)
	case models.FavoriteVehicle:
		return getRow[models.Vehicle](ctx, q, ref.Kind.Label(), s.db.Rebind("SELECT "+vehicleColumns+" FROM "+ref.Kind.Table()+" WHERE id = ?"), ref.ID)
	}
	return nil, fmt.Errorf("resolve %s: unknown favorite type", ref)
}

func (s *Store) requireUser(ctx context.Context, q sqlx.QueryerContext, userID int) error {
	var id int
	err := sqlx.GetContext(ctx, q, &id, s.db.Rebind("SELECT id FROM users WHERE id = ?"), userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: "User"}
	}
	if err != nil {
		return fmt.Errorf("look up user %d: %w", userID, err)
	}
	return nil
}

// ListFavorites returns the favorites of a user ordered by id.
// A missing user is a *NotFoundError; a user without favorites yields an empty slice.
func (s *Store) ListFavorites(ctx context.Context, userID int) ([]models.Favorite, error) {
	if err := s.requireUser(ctx, s.db, userID); err != nil {
		return nil, err
	}
	favorites, err := listRows[models.Favorite](ctx, s.db,
		s.db.Rebind("SELECT "+favoriteColumns+" FROM favorites WHERE user_id = ? ORDER BY id"), userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites of user %d: %w", userID, err)
	}
	return favorites, nil
}

// CreateFavorite records that userID likes ref.
// User and target are checked inside the same transaction as the insert.
func (s *Store) CreateFavorite(ctx context.Context, userID int, ref models.FavoriteRef, extraInfo *string) (models.Favorite, error) {
	fav := models.Favorite{
		UserID:       userID,
		FavoriteID:   ref.ID,
		FavoriteType: ref.Kind,
		ExtraInfo:    extraInfo,
	}

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.requireUser(ctx, tx, userID); err != nil {
			return err
		}
		if _, err := s.resolve(ctx, tx, ref); err != nil {
			return err
		}
		err := tx.QueryRowxContext(ctx,
			tx.Rebind("INSERT INTO favorites (user_id, favorite_id, favorite_type, extra_info) VALUES (?, ?, ?, ?) RETURNING id"),
			userID, ref.ID, string(ref.Kind), extraInfo).Scan(&fav.ID)
		if err != nil {
			return fmt.Errorf("insert favorite %s: %w", ref, err)
		}
		return nil
	})
	if err != nil {
		return models.Favorite{}, err
	}
	return fav, nil
}

// DeleteFavorite removes one favorite of userID pointing at ref.
// When duplicates exist the oldest row goes first.
func (s *Store) DeleteFavorite(ctx context.Context, userID int, ref models.FavoriteRef) (models.Favorite, error) {
	var fav models.Favorite
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.requireUser(ctx, tx, userID); err != nil {
			return err
		}

		var err error
		fav, err = getRow[models.Favorite](ctx, tx, "Favorite",
			tx.Rebind("SELECT "+favoriteColumns+" FROM favorites WHERE user_id = ? AND favorite_id = ? AND favorite_type = ? ORDER BY id LIMIT 1"),
			userID, ref.ID, string(ref.Kind))
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM favorites WHERE id = ?"), fav.ID); err != nil {
			return fmt.Errorf("delete favorite %d: %w", fav.ID, err)
		}
		return nil
	})
	if err != nil {
		return models.Favorite{}, err
	}
	return fav, nil
}
