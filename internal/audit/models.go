package audit

import (
	"context"
	"time"

	"github.com/mssola/useragent"

	"fraudregistry/pkg/requestcontext"
)

// EventType labels the registry actions external collaborators subscribe to.
type EventType string

const (
	EventReportSubmitted      EventType = "report_submitted"
	EventReportVerified       EventType = "report_verified"
	EventActionTaken          EventType = "action_taken"
	EventAgencyRegistered     EventType = "agency_registered"
	EventOwnershipTransferred EventType = "ownership_transferred"
	EventPauseToggled         EventType = "pause_toggled"
)

// ClientInfo is parsed from the caller's User-Agent so the audit trail keeps
// submission provenance.
type ClientInfo struct {
	IP      string `json:"ip,omitempty"`
	Browser string `json:"browser,omitempty"`
	OS      string `json:"os,omitempty"`
}

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID          string     `json:"id"`
	Type        EventType  `json:"type"`
	Timestamp   time.Time  `json:"timestamp"`
	AgencyID    string     `json:"agency_id,omitempty"`
	ReportIndex int64      `json:"report_index"`
	ReportID    string     `json:"report_id,omitempty"`
	Platform    string     `json:"platform,omitempty"`
	RiskScore   int        `json:"risk_score,omitempty"`
	Detail      string     `json:"detail,omitempty"`
	Client      ClientInfo `json:"client,omitempty"`
}

// ClientInfoFromContext builds provenance from request metadata. Unparseable
// or absent User-Agents leave the fields empty.
func ClientInfoFromContext(ctx context.Context) ClientInfo {
	info := ClientInfo{IP: requestcontext.ClientIP(ctx)}
	if ua := requestcontext.UserAgent(ctx); ua != "" {
		parsed := useragent.New(ua)
		browser, version := parsed.Browser()
		if version != "" {
			browser = browser + "/" + version
		}
		info.Browser = browser
		info.OS = parsed.OS()
	}
	return info
}
