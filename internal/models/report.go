package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportTypeWeekly   = "weekly"
	ReportTypeMonthly  = "monthly"
	ReportTypeCampaign = "campaign"
	ReportTypeCustom   = "custom"

	ReportStatusReady = "ready"
)

// ReportPeriod holds the start/end date pair as YYYY-MM-DD strings, the way
// the dashboard consumes them.
type ReportPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ReportSummary struct {
	TotalInvestment  float64 `json:"totalInvestment"`
	TotalLeads       int     `json:"totalLeads"`
	TotalConversions int     `json:"totalConversions"`
	AverageCPC       float64 `json:"averageCPC"`
	AverageCTR       float64 `json:"averageCTR"`
	ROAS             float64 `json:"roas"`
}

// Report is a generated performance report. Rows are immutable once written;
// there are no update or delete operations.
type Report struct {
	ID        string        `json:"id" db:"id"`
	ClientID  uuid.UUID     `json:"clientId" db:"client_id"`
	Name      string        `json:"name" db:"name"`
	Type      string        `json:"type" db:"type"`
	Period    ReportPeriod  `json:"period"`
	Status    string        `json:"status" db:"status"`
	Summary   ReportSummary `json:"summary" db:"summary"`
	ObjectKey string        `json:"-" db:"object_key"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}

// ReportTypeName returns the pt-BR label embedded in generated report names.
func ReportTypeName(reportType string) string {
	switch reportType {
	case ReportTypeWeekly:
		return "Semanal"
	case ReportTypeMonthly:
		return "Mensal"
	case ReportTypeCampaign:
		return "de Campanha"
	default:
		return "Personalizado"
	}
}
