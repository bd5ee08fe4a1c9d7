package models

type NotificationSettings struct {
	EmailReports      bool `json:"emailReports"`
	EmailAlerts       bool `json:"emailAlerts"`
	WeeklyDigest      bool `json:"weeklyDigest"`
	CampaignUpdates   bool `json:"campaignUpdates"`
	BudgetAlerts      bool `json:"budgetAlerts"`
	PerformanceAlerts bool `json:"performanceAlerts"`
}

type PrivacySettings struct {
	DataRetention   string `json:"dataRetention"`
	AllowAnalytics  bool   `json:"allowAnalytics"`
	ShareData       bool   `json:"shareData"`
	MarketingEmails bool   `json:"marketingEmails"`
}

type ProfileSettings struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Website     string `json:"website"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type IntegrationsSettings struct {
	GoogleAds       IntegrationStatus `json:"googleAds"`
	FacebookAds     IntegrationStatus `json:"facebookAds"`
	GoogleAnalytics IntegrationStatus `json:"googleAnalytics"`
}

// SettingsView is the composite settings document assembled from several
// client sub-fields. Integrations are read-only: connection state is owned by
// the integration flows, not the settings screen.
type SettingsView struct {
	Profile       ProfileSettings      `json:"profile"`
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
	Integrations  IntegrationsSettings `json:"integrations"`
}

// DefaultNotificationSettings are applied when the client has no stored
// notification preferences.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailReports:      true,
		EmailAlerts:       true,
		WeeklyDigest:      true,
		CampaignUpdates:   true,
		BudgetAlerts:      true,
		PerformanceAlerts: false,
	}
}

// DefaultPrivacySettings are applied when the client has no stored privacy
// preferences. Retention defaults to twelve months.
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		DataRetention:   "12months",
		AllowAnalytics:  true,
		ShareData:       false,
		MarketingEmails: true,
	}
}
