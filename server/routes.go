package server

import (
	"context"
	"net/http"
	"strings"

	"starwars-api/config"
	"starwars-api/handlers"
	"starwars-api/models"

	"github.com/google/uuid"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/umakantv/go-utils/httpserver"
)

// Route is an httpserver route plus the handler serving it
type Route struct {
	httpserver.Route
	Handler httpserver.HandlerFunc
}

func newRoute(name, method, path string, handler httpserver.HandlerFunc) Route {
	return Route{
		Route: httpserver.Route{
			Name:     name,
			Method:   method,
			Path:     path,
			AuthType: "none",
		},
		Handler: handler,
	}
}

// Routes lists every endpoint of the API
func Routes(catalog *handlers.CatalogHandler, favorites *handlers.FavoriteHandler, health httpserver.HandlerFunc) []Route {
	routes := []Route{
		newRoute("HealthCheck", http.MethodGet, "/health", health),

		newRoute("ListPeople", http.MethodGet, "/people", catalog.GetPeople),
		newRoute("GetPerson", http.MethodGet, "/people/{id:[0-9]+}", catalog.GetPerson),
		newRoute("ListPlanets", http.MethodGet, "/planets", catalog.GetPlanets),
		newRoute("GetPlanet", http.MethodGet, "/planets/{id:[0-9]+}", catalog.GetPlanet),
		newRoute("ListVehicles", http.MethodGet, "/vehicles", catalog.GetVehicles),
		newRoute("GetVehicle", http.MethodGet, "/vehicles/{id:[0-9]+}", catalog.GetVehicle),
		newRoute("ListUsers", http.MethodGet, "/users", catalog.GetUsers),
		newRoute("GetUser", http.MethodGet, "/users/{id:[0-9]+}", catalog.GetUser),

		newRoute("ListUserFavorites", http.MethodGet, "/users/{user_id:[0-9]+}/favorites", favorites.ListForUser),
	}

	for _, kind := range models.FavoriteKinds {
		label := kind.Label()
		routes = append(routes,
			newRoute("Create"+label+"Favorite", http.MethodPost, "/favorites/"+string(kind)+"/{id:[0-9]+}", favorites.Create(kind)),
			newRoute("Delete"+label+"Favorite", http.MethodDelete, "/favorite/"+string(kind)+"/{id:[0-9]+}", favorites.Delete(kind)),
		)
	}

	return routes
}

// NewRouter mounts routes on a gorilla/mux router wrapped with CORS and panic recovery
func NewRouter(routes []Route, cors config.CORSConfig) http.Handler {
	router := mux.NewRouter()
	for _, route := range routes {
		router.HandleFunc(route.Path, adapt(route)).Methods(route.Method)
	}
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"msg":"Not found"}` + "\n"))
	})

	var h http.Handler = router
	h = trimTrailingSlash(h)
	h = gorillahandlers.RecoveryHandler()(h)
	h = gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cors.AllowedOrigins),
		gorillahandlers.AllowedMethods(cors.AllowedMethods),
		gorillahandlers.AllowedHeaders(cors.AllowedHeaders),
	)(h)
	return h
}

// adapt attaches route details and a request id before calling the handler
func adapt(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), httpserver.RouteNameKey, route.Name)
		ctx = context.WithValue(ctx, httpserver.RouteMethodKey, route.Method)
		ctx = context.WithValue(ctx, httpserver.RoutePathKey, r.URL.Path)
		ctx = context.WithValue(ctx, httpserver.AuthTypeKey, route.AuthType)
		ctx = handlers.WithRequestID(ctx, requestID)
		route.Handler(ctx, w, r.WithContext(ctx))
	}
}

// trimTrailingSlash lets "/people/" reach "/people" without a redirect
func trimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
			r.URL.Path = strings.TrimRight(r.URL.Path, "/")
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
		}
		next.ServeHTTP(w, r)
	})
}
