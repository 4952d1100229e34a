package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umakantv/go-utils/httpserver"
	"github.com/umakantv/go-utils/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})
	os.Exit(m.Run())
}

func TestDecodeFavoriteRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		userID  int
	}{
		{name: "valid", body: `{"user_id": 3}`, userID: 3},
		{name: "valid with extra info", body: ` {"user_id": 4, "extra_info": "note"} `, userID: 4},
		{name: "empty", body: "", wantErr: errBodyRequired},
		{name: "whitespace", body: "  \n", wantErr: errBodyRequired},
		{name: "null", body: "null", wantErr: errBodyRequired},
		{name: "array", body: `[{"user_id": 1}]`, wantErr: errBodyNotObject},
		{name: "number", body: `7`, wantErr: errBodyNotObject},
		{name: "missing user_id", body: `{"extra_info": "x"}`, wantErr: errUserIDRequired},
		{name: "null user_id", body: `{"user_id": null}`, wantErr: errUserIDRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/favorites/people/1", strings.NewReader(tt.body))
			req, err := decodeFavoriteRequest(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, req.UserID)
			assert.Equal(t, tt.userID, *req.UserID)
		})
	}
}

func TestDecodeFavoriteRequestRejectsWrongTypes(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/favorites/people/1", strings.NewReader(`{"user_id": "1"}`))
	_, err := decodeFavoriteRequest(r)
	assert.Error(t, err)
}

func TestRequestIDContext(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "r1")
	assert.Equal(t, "r1", GetRequestID(ctx))
}

func TestLogRequestReadsRouteKeys(t *testing.T) {
	ctx := context.WithValue(context.Background(), httpserver.RouteNameKey, "ListPeople")
	ctx = context.WithValue(ctx, httpserver.RouteMethodKey, http.MethodGet)
	ctx = context.WithValue(ctx, httpserver.RoutePathKey, "/people")
	ctx = WithRequestID(ctx, "r1")

	assert.Equal(t, "ListPeople", httpserver.GetRouteName(ctx))
	assert.Equal(t, http.MethodGet, httpserver.GetRouteMethod(ctx))
	assert.Equal(t, "/people", httpserver.GetRoutePath(ctx))
	assert.NotPanics(t, func() {
		logRequest(ctx, "info", "listing people")
		logRequest(ctx, "debug", "")
	})
}

func TestPathID(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/people/12", nil), map[string]string{"id": "12"})
	w := httptest.NewRecorder()
	id, ok := pathID(context.Background(), w, r, "id")
	assert.True(t, ok)
	assert.Equal(t, 12, id)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/people/x", nil), map[string]string{"id": "99999999999999999999999"})
	w = httptest.NewRecorder()
	_, ok = pathID(context.Background(), w, r, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
