package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"carelog-be/config"

	"github.com/stretchr/testify/require"
)

func TestFetchUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/users", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"uid":"u001","name":"田中太郎"},{"uid":"u002","name":"佐藤花子"}]`))
	}))
	defer srv.Close()

	svc := NewMasterSyncService(&config.Config{MasterDBURL: srv.URL, MasterDBAPIKey: "test-key"})
	users, err := svc.FetchUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "u001", users[0].UID)
	require.Equal(t, "田中太郎", users[0].Name)
}

func TestFetchUsersNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	svc := NewMasterSyncService(&config.Config{MasterDBURL: srv.URL, MasterDBAPIKey: "bad-key"})
	_, err := svc.FetchUsers(context.Background())
	require.Error(t, err)
}

func TestFetchUsersWrongContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>login page</html>"))
	}))
	defer srv.Close()

	svc := NewMasterSyncService(&config.Config{MasterDBURL: srv.URL})
	_, err := svc.FetchUsers(context.Background())
	require.Error(t, err)
}

func TestFetchUsersUnconfigured(t *testing.T) {
	svc := NewMasterSyncService(&config.Config{})
	_, err := svc.FetchUsers(context.Background())
	require.Error(t, err)
}
