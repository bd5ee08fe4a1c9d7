package services

import "errors"

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrChartNotFound   = errors.New("chart not found")
	ErrReportNotFound  = errors.New("report not found")
	ErrTagNameRequired = errors.New("tag name is required")

	ErrGoogleAdsNotConfigured = errors.New("google ads credentials not configured")
	ErrGoogleAdsToken         = errors.New("failed to refresh access token")
)
