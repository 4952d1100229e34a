package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"starwars-api/models"
	"starwars-api/store"

	"github.com/umakantv/go-utils/errs"
	"github.com/umakantv/go-utils/httpserver"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// FavoriteHandler manages the favorites ledger
type FavoriteHandler struct {
	store *store.Store
}

// NewFavoriteHandler creates a new favorites handler
func NewFavoriteHandler(s *store.Store) *FavoriteHandler {
	return &FavoriteHandler{store: s}
}

var (
	errBodyRequired   = errors.New("Request body is required")
	errBodyNotObject  = errors.New("Request body must be a JSON object")
	errUserIDRequired = errors.New("user_id is required")
)

// decodeFavoriteRequest reads {"user_id": int, "extra_info": string?}.
// Empty bodies, non-objects and a missing user_id are rejected.
func decodeFavoriteRequest(r *http.Request) (models.FavoriteRequest, error) {
	var req models.FavoriteRequest

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return req, errBodyRequired
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return req, errBodyRequired
	}
	if raw[0] != '{' {
		return req, errBodyNotObject
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, errors.New("Invalid JSON: " + err.Error())
	}
	if req.UserID == nil {
		return req, errUserIDRequired
	}
	return req, nil
}

// readRequest parses the target id and body; on failure a 400 has already been written
func readRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, kind models.FavoriteKind) (models.FavoriteRef, models.FavoriteRequest, bool) {
	id, ok := pathID(ctx, w, r, "id")
	if !ok {
		return models.FavoriteRef{}, models.FavoriteRequest{}, false
	}

	req, err := decodeFavoriteRequest(r)
	if err != nil {
		logRequest(ctx, "error", "Invalid favorite request", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError(err.Error()))
		return models.FavoriteRef{}, models.FavoriteRequest{}, false
	}

	return models.FavoriteRef{Kind: kind, ID: id}, req, true
}

// Create returns the handler for POST /favorites/{kind}/{id}.
// The new favorite is answered with 200 to stay compatible with existing clients.
func (h *FavoriteHandler) Create(kind models.FavoriteKind) httpserver.HandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		ref, req, ok := readRequest(ctx, w, r, kind)
		if !ok {
			return
		}

		logRequest(ctx, "info", "Creating favorite", zap.Int("user_id", *req.UserID), zap.Stringer("target", ref))

		fav, err := h.store.CreateFavorite(ctx, *req.UserID, ref, req.ExtraInfo)
		if err != nil {
			writeStoreError(ctx, w, err, zap.Int("user_id", *req.UserID), zap.Stringer("target", ref))
			return
		}

		logRequest(ctx, "info", "Favorite created successfully", zap.Int("favorite_id", fav.ID))
		writeJSON(w, http.StatusOK, fav)
	}
}

// Delete returns the handler for DELETE /favorite/{kind}/{id}
func (h *FavoriteHandler) Delete(kind models.FavoriteKind) httpserver.HandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		ref, req, ok := readRequest(ctx, w, r, kind)
		if !ok {
			return
		}

		logRequest(ctx, "info", "Deleting favorite", zap.Int("user_id", *req.UserID), zap.Stringer("target", ref))

		fav, err := h.store.DeleteFavorite(ctx, *req.UserID, ref)
		if err != nil {
			writeStoreError(ctx, w, err, zap.Int("user_id", *req.UserID), zap.Stringer("target", ref))
			return
		}

		logRequest(ctx, "info", "Favorite deleted successfully", zap.Int("favorite_id", fav.ID))
		writeMsg(w, http.StatusOK, "Favorite deleted")
	}
}

// ListForUser handles GET /users/{user_id}/favorites
func (h *FavoriteHandler) ListForUser(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(ctx, w, r, "user_id")
	if !ok {
		return
	}

	logRequest(ctx, "info", "Listing favorites", zap.Int("user_id", userID))

	favorites, err := h.store.ListFavorites(ctx, userID)
	if err != nil {
		writeStoreError(ctx, w, err, zap.Int("user_id", userID))
		return
	}
	if len(favorites) == 0 {
		logRequest(ctx, "info", "User has no favorites", zap.Int("user_id", userID))
		writeMsg(w, http.StatusNotFound, "No favorites found")
		return
	}

	logRequest(ctx, "info", "Favorites retrieved successfully", zap.Int("count", len(favorites)))
	writeJSON(w, http.StatusOK, favorites)
}
