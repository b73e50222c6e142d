package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/internal/mock"
	"github.com/MKhiriev/go-rx-api/internal/store"
	"github.com/MKhiriev/go-rx-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helper ----

func newTestRouter(t *testing.T, token string) (http.Handler, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	h := NewHandler(repo, models.NewAppBuildInfo("v0.1.0", "", ""), token, logger.Nop())
	return h.Init(), repo
}

func serve(router http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ---- GET /users/{id} ----

func TestGetUser(t *testing.T) {
	router, repo := newTestRouter(t, "")
	repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(models.User{ID: 1, Username: "Bret"}, nil)

	rr := serve(router, http.MethodGet, "/users/1", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	var got models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Bret", got.Username)
}

func TestGetUser_NotFoundCases(t *testing.T) {
	tests := []struct {
		name   string
		target string
		setup  func(repo *mock.MockUserRepository)
	}{
		{
			name:   "unknown id",
			target: "/users/42",
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().GetUser(gomock.Any(), int64(42)).Return(models.User{}, store.ErrUserNotFound)
			},
		},
		{
			name:   "non numeric id",
			target: "/users/abc",
			setup:  func(*mock.MockUserRepository) {},
		},
		{
			name:   "unknown route",
			target: "/posts/1",
			setup:  func(*mock.MockUserRepository) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newTestRouter(t, "")
			tt.setup(repo)

			rr := serve(router, http.MethodGet, tt.target, nil)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{}`, rr.Body.String())
		})
	}
}

func TestGetUser_StoreError(t *testing.T) {
	router, repo := newTestRouter(t, "")
	repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(models.User{}, context.DeadlineExceeded)

	rr := serve(router, http.MethodGet, "/users/1", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "deadline")
}

// ---- GET /users ----

func TestListUsers(t *testing.T) {
	router, repo := newTestRouter(t, "")
	repo.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: 1}, {ID: 2}}, nil)

	rr := serve(router, http.MethodGet, "/users", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListUsers_Gzip(t *testing.T) {
	router, repo := newTestRouter(t, "")
	repo.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: 1, Username: "Bret"}}, nil)

	rr := serve(router, http.MethodGet, "/users", map[string]string{"Accept-Encoding": "gzip"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"username":"Bret"`)
}

// ---- Авторизация ----

func TestRoutes_Auth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer s3cret", wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer s3cret", wantStatus: http.StatusOK},
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic s3cret", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newTestRouter(t, "s3cret")
			if tt.wantStatus == http.StatusOK {
				repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(models.User{ID: 1}, nil)
			}

			header := map[string]string{}
			if tt.header != "" {
				header["Authorization"] = tt.header
			}
			rr := serve(router, http.MethodGet, "/users/1", header)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRoutes_VersionIsPublic(t *testing.T) {
	router, _ := newTestRouter(t, "s3cret")

	rr := serve(router, http.MethodGet, "/version", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v0.1.0", rr.Body.String())
}

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-token", wantToken: "my-token"},
		{name: "no space", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Token abc", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer   ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, got)
		})
	}
}
