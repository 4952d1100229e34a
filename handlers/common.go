package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"starwars-api/store"

	"github.com/gorilla/mux"
	"github.com/umakantv/go-utils/errs"
	"github.com/umakantv/go-utils/httpserver"
	logger "github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

type requestIDKey struct{}

// WithRequestID stores the request id used to correlate log lines
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the request id, empty when none was stored
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// logRequest logs with the route prefix (timestamp - route - method - path - request id)
// and the route fields, followed by any caller fields such as zap.Error(err).
func logRequest(ctx context.Context, level string, message string, fields ...zap.Field) {
	routeName := httpserver.GetRouteName(ctx)
	method := httpserver.GetRouteMethod(ctx)
	path := httpserver.GetRoutePath(ctx)
	requestID := GetRequestID(ctx)

	logMsg := time.Now().Format("2006-01-02 15:04:05") + " - " + routeName + " - " + method + " - " + path
	if requestID != "" {
		logMsg += " - req:" + requestID
	}
	if message != "" {
		logMsg += " - " + message
	}

	allFields := append([]zap.Field{
		zap.String("route", routeName),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	}, fields...)

	switch level {
	case "info":
		logger.Info(logMsg, allFields...)
	case "error":
		logger.Error(logMsg, allFields...)
	case "debug":
		logger.Debug(logMsg, allFields...)
	}
}

// writeJSON sets the content type, writes status and encodes v
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeMsg writes the {"msg": ...} body used for empty listings and acknowledgements
func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

// writeStoreError turns a store error into 404 or 500.
// Database details are logged, never sent to the client.
func writeStoreError(ctx context.Context, w http.ResponseWriter, err error, fields ...zap.Field) {
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		logRequest(ctx, "info", nf.Error(), fields...)
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError(nf.Error()))
		return
	}

	logRequest(ctx, "error", "Store operation failed", append(fields, zap.Error(err))...)
	writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Database error"))
}

// pathID reads a numeric path variable; on failure a 400 has already been written
func pathID(ctx context.Context, w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	idStr := mux.Vars(r)[name]
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 0 {
		logRequest(ctx, "error", "Invalid path id", zap.String(name, idStr))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid "+name))
		return 0, false
	}
	return id, true
}
