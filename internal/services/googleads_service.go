package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	googleOAuthTokenURL  = "https://oauth2.googleapis.com/token"
	googleAdsAPIBaseURL  = "https://googleads.googleapis.com"
	googleAdsAPIVersion  = "v16"
	googleAdsHTTPTimeout = 15 * time.Second
)

// GoogleAdsCredentials are the server-side API credentials. They come from
// process configuration and are never accepted from request bodies.
type GoogleAdsCredentials struct {
	DeveloperToken string
	ClientID       string
	ClientSecret   string
	RefreshToken   string
}

// Configured reports whether every credential is present.
func (c GoogleAdsCredentials) Configured() bool {
	return c.DeveloperToken != "" && c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// ConnectionTestResult is the shallow success payload of a credential test.
type ConnectionTestResult struct {
	CustomerID    string `json:"customerId"`
	CampaignCount int    `json:"campaignCount"`
}

// GoogleAdsService performs the passthrough credential test: exchange the
// refresh token for an access token, then issue one bounded read-only query
// against the customer's account.
type GoogleAdsService interface {
	TestConnection(ctx context.Context, customerID string) (*ConnectionTestResult, error)
}

type googleAdsService struct {
	creds    GoogleAdsCredentials
	tokenURL string
	baseURL  string
	http     *http.Client
}

func NewGoogleAdsService(creds GoogleAdsCredentials) GoogleAdsService {
	return &googleAdsService{
		creds:    creds,
		tokenURL: googleOAuthTokenURL,
		baseURL:  googleAdsAPIBaseURL,
		http:     &http.Client{Timeout: googleAdsHTTPTimeout},
	}
}

func (s *googleAdsService) TestConnection(ctx context.Context, customerID string) (*ConnectionTestResult, error) {
	if !s.creds.Configured() {
		return nil, ErrGoogleAdsNotConfigured
	}

	accessToken, err := s.refreshAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.campaignProbe(ctx, customerID, accessToken)
	if err != nil {
		return nil, err
	}

	return &ConnectionTestResult{
		CustomerID:    customerID,
		CampaignCount: count,
	}, nil
}

func (s *googleAdsService) refreshAccessToken(ctx context.Context) (string, error) {
	form := url.Values{
		"client_id":     {s.creds.ClientID},
		"client_secret": {s.creds.ClientSecret},
		"refresh_token": {s.creds.RefreshToken},
		"grant_type":    {"refresh_token"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGoogleAdsToken, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrGoogleAdsToken, resp.StatusCode)
	}

	var tokenData struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenData); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGoogleAdsToken, err)
	}
	if tokenData.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrGoogleAdsToken)
	}
	return tokenData.AccessToken, nil
}

// campaignProbe issues one LIMIT 1 campaign query and returns the shallow
// result count.
func (s *googleAdsService) campaignProbe(ctx context.Context, customerID, accessToken string) (int, error) {
	payload, err := json.Marshal(map[string]string{
		"query": `SELECT campaign.id, campaign.name, campaign.status FROM campaign LIMIT 1`,
	})
	if err != nil {
		return 0, err
	}

	endpoint := fmt.Sprintf("%s/%s/customers/%s/googleAds:searchStream", s.baseURL, googleAdsAPIVersion, customerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", s.creds.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("google ads api error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("google ads api error: status %d: %s", resp.StatusCode, string(body))
	}

	var queryData struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&queryData); err != nil {
		return 0, fmt.Errorf("google ads api error: %v", err)
	}
	return len(queryData.Results), nil
}
