package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"starwars-api/store"

	"github.com/umakantv/go-utils/cache"
	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only people, planets, vehicles and users tables
type CatalogHandler struct {
	store *store.Store
	cache cache.Cache // nil disables caching
	ttl   time.Duration
}

// NewCatalogHandler creates a catalog handler; c may be nil
func NewCatalogHandler(s *store.Store, c cache.Cache, ttl time.Duration) *CatalogHandler {
	return &CatalogHandler{
		store: s,
		cache: c,
		ttl:   ttl,
	}
}

// GetPeople handles GET /people
func (h *CatalogHandler) GetPeople(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	serveList(ctx, h, w, "people", h.store.ListPeople)
}

// GetPerson handles GET /people/{id}
func (h *CatalogHandler) GetPerson(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	serveOne(ctx, h, w, r, "people", h.store.GetPerson)
}

// GetPlanets handles GET /planets
func (h *CatalogHandler) GetPlanets(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	serveList(ctx, h, w, "planets", h.store.ListPlanets)
}

// GetPlanet handles GET /planets/{id}
func (h *CatalogHandler) GetPlanet(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	serveOne(ctx, h, w, r, "planets", h.store.GetPlanet)
}

// GetVehicles handles GET /vehicles
func (h *CatalogHandler) GetVehicles(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	serveList(ctx, h, w, "vehicles", h.store.ListVehicles)
}

// GetVehicle handles GET /vehicles/{id}
func (h *CatalogHandler) GetVehicle(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	serveOne(ctx, h, w, r, "vehicles", h.store.GetVehicle)
}

// GetUsers handles GET /users; users serialize as {id, email}
func (h *CatalogHandler) GetUsers(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	serveList(ctx, h, w, "users", h.store.ListUsers)
}

// GetUser handles GET /users/{id}
func (h *CatalogHandler) GetUser(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	serveOne(ctx, h, w, r, "users", h.store.GetUser)
}

func serveList[T any](ctx context.Context, h *CatalogHandler, w http.ResponseWriter, table string, load func(context.Context) ([]T, error)) {
	logRequest(ctx, "info", "Listing "+table)

	cacheKey := table + ":list"
	if h.serveCached(ctx, w, cacheKey) {
		return
	}

	rows, err := load(ctx)
	if err != nil {
		writeStoreError(ctx, w, err)
		return
	}
	if len(rows) == 0 {
		logRequest(ctx, "info", "Empty table", zap.String("table", table))
		writeMsg(w, http.StatusNotFound, "No "+table+" found")
		return
	}

	logRequest(ctx, "info", "Rows retrieved successfully", zap.Int("count", len(rows)))
	h.writeAndCache(ctx, w, cacheKey, rows)
}

func serveOne[T any](ctx context.Context, h *CatalogHandler, w http.ResponseWriter, r *http.Request, table string, load func(context.Context, int) (T, error)) {
	id, ok := pathID(ctx, w, r, "id")
	if !ok {
		return
	}

	logRequest(ctx, "info", "Getting row", zap.String("table", table), zap.Int("id", id))

	cacheKey := table + ":" + strconv.Itoa(id)
	if h.serveCached(ctx, w, cacheKey) {
		return
	}

	row, err := load(ctx, id)
	if err != nil {
		writeStoreError(ctx, w, err, zap.String("table", table), zap.Int("id", id))
		return
	}

	h.writeAndCache(ctx, w, cacheKey, row)
}

// serveCached writes a cached response body and reports whether it did
func (h *CatalogHandler) serveCached(ctx context.Context, w http.ResponseWriter, key string) bool {
	if h.cache == nil {
		return false
	}
	cached, err := h.cache.Get(key)
	if err != nil {
		return false
	}

	var body []byte
	switch v := cached.(type) {
	case []byte:
		body = v
	case string:
		body = []byte(v)
	default:
		logRequest(ctx, "debug", "Unexpected cache value type", zap.String("key", key))
		return false
	}

	logRequest(ctx, "debug", "Serving from cache", zap.String("key", key))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
	return true
}

// writeAndCache writes v as a 200 response and keeps the body in the cache
func (h *CatalogHandler) writeAndCache(ctx context.Context, w http.ResponseWriter, key string, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logRequest(ctx, "error", "Failed to encode response", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Failed to encode response"))
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(key, string(body), h.ttl); err != nil {
			logRequest(ctx, "error", "Failed to cache response", zap.String("key", key), zap.Error(err))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(append(body, '\n'))
}

// Note: only the catalog tables are cached. They have no write endpoints, so
// entries only go stale through out-of-band edits and expire after ttl.
// Favorites are never cached.
