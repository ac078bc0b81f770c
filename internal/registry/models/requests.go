package models

// Request and response DTOs for the HTTP layer. Kept beside the domain
// models so handler and service agree on shapes without a shared package.

type TokenRequest struct {
	AgencyID string `json:"agency_id"`
	APIKey   string `json:"api_key"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type RegisterAgencyRequest struct {
	AgencyID string `json:"agency_id"`
	Name     string `json:"name"`
}

// RegisterAgencyResponse returns the plaintext API key exactly once; only the
// bcrypt hash is retained.
type RegisterAgencyResponse struct {
	Agency Agency `json:"agency"`
	APIKey string `json:"api_key"`
}

type SubmitReportRequest struct {
	Platform  string `json:"platform"`
	Username  string `json:"username"`
	RiskScore int    `json:"risk_score"`
	Evidence  string `json:"evidence"`
	ReportID  string `json:"report_id"`
}

type SubmitReportResponse struct {
	Index     int64     `json:"index"`
	Verified  bool      `json:"verified"`
	RiskLevel RiskLevel `json:"risk_level"`
}

type MarkActionRequest struct {
	Action string `json:"action"`
}

type TransferOwnershipRequest struct {
	NewOwner string `json:"new_owner"`
}

type PauseResponse struct {
	Paused bool `json:"paused"`
}

// ReportView is the externally visible report shape, including the derived
// risk tier.
type ReportView struct {
	Report
	RiskLevel RiskLevel `json:"risk_level"`
}

// NewReportView attaches the derived tier to a report.
func NewReportView(r Report) ReportView {
	return ReportView{Report: r, RiskLevel: r.RiskLevel()}
}

type IndexListResponse struct {
	Indices []int64 `json:"indices"`
	Count   int     `json:"count"`
}

type PlatformCountResponse struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

type TotalReportsResponse struct {
	Total int64 `json:"total"`
}
