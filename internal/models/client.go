package models

import (
	"time"

	"github.com/google/uuid"
)

// IntegrationStatus tracks the connection state of a third-party ads platform.
type IntegrationStatus struct {
	Connected bool       `json:"connected"`
	LastSync  *time.Time `json:"lastSync"`
}

// ClientSettings is the nested preferences blob stored on the client record.
// Either subset may be absent; readers apply defaults.
type ClientSettings struct {
	Notifications *NotificationSettings `json:"notifications,omitempty"`
	Privacy       *PrivacySettings      `json:"privacy,omitempty"`
}

type Client struct {
	ID              uuid.UUID          `json:"id" db:"id"`
	Slug            string             `json:"slug" db:"slug"`
	Name            string             `json:"name" db:"name"`
	Email           *string            `json:"email" db:"email"`
	Phone           *string            `json:"phone" db:"phone"`
	Website         *string            `json:"website" db:"website"`
	Address         *string            `json:"address" db:"address"`
	Description     *string            `json:"description" db:"description"`
	Tags            []string           `json:"tags" db:"tags"`
	CustomCharts    []CustomChart      `json:"customCharts" db:"custom_charts"`
	Settings        *ClientSettings    `json:"settings" db:"settings"`
	GoogleAds       *IntegrationStatus `json:"googleAds" db:"google_ads"`
	FacebookAds     *IntegrationStatus `json:"facebookAds" db:"facebook_ads"`
	GoogleAnalytics *IntegrationStatus `json:"googleAnalytics" db:"google_analytics"`
	CreatedAt       time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" db:"updated_at"`
}

// HasTag reports whether the client's tag sequence contains the raw value.
func (c *Client) HasTag(value string) bool {
	for _, tag := range c.Tags {
		if tag == value {
			return true
		}
	}
	return false
}
