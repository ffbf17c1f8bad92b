package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"carelog-be/config"
)

// MasterUser is one user row from the organization's master database API.
type MasterUser struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// MasterSyncService pulls the client roster from the master database so the
// local clients collection can be reconciled against it.
type MasterSyncService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewMasterSyncService(cfg *config.Config) *MasterSyncService {
	return &MasterSyncService{
		baseURL: strings.TrimRight(cfg.MasterDBURL, "/"),
		apiKey:  cfg.MasterDBAPIKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchUsers retrieves the full user list from the master database.
func (s *MasterSyncService) FetchUsers(ctx context.Context) ([]MasterUser, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("master database URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/v1/users", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("master database request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("master database returned status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return nil, fmt.Errorf("master database returned unexpected content type %q", ct)
	}

	var users []MasterUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to decode master database response: %w", err)
	}
	return users, nil
}
