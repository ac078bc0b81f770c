// Package handler exposes the registry over HTTP. Handlers decode and decode
// only; every rule lives in the service, and errors cross the boundary as
// domain errors that map to status codes in one place.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
	"fraudregistry/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_service.go -package=mocks

// Service is the registry surface the HTTP layer depends on.
type Service interface {
	RegisterAgency(ctx context.Context, caller, agencyID id.AgencyID, name string) (models.Agency, string, error)
	SubmitReport(ctx context.Context, caller id.AgencyID, req models.SubmitReportRequest) (models.Report, error)
	VerifyReport(ctx context.Context, caller id.AgencyID, index int64) (models.Report, error)
	MarkActionTaken(ctx context.Context, caller id.AgencyID, index int64, action string) (models.Report, error)
	TogglePause(ctx context.Context, caller id.AgencyID) (bool, error)
	TransferOwnership(ctx context.Context, caller, newOwner id.AgencyID) error
	AuthenticateAgency(ctx context.Context, agencyID id.AgencyID, apiKey string) error

	GetReport(ctx context.Context, index int64) (models.Report, error)
	ReportsByPlatform(ctx context.Context, platform string, offset, limit int) ([]int64, error)
	HighRiskReports(ctx context.Context, limit int) ([]int64, error)
	Statistics(ctx context.Context) models.Statistics
	AgencyInfo(ctx context.Context, agencyID id.AgencyID) models.Agency
	PlatformCount(ctx context.Context, platform string) int64
	TotalReports(ctx context.Context) int64
	Owner() id.AgencyID
	Paused() bool
}

// TokenIssuer mints bearer tokens after API-key authentication succeeds.
type TokenIssuer interface {
	GenerateToken(agencyID id.AgencyID) (string, error)
	TTL() time.Duration
}

// DefaultListLimit applies when a list request omits the limit parameter.
const DefaultListLimit = 50

type Handler struct {
	service Service
	tokens  TokenIssuer
	logger  *slog.Logger
}

func New(service Service, tokens TokenIssuer, logger *slog.Logger) *Handler {
	return &Handler{service: service, tokens: tokens, logger: logger}
}

// Routes mounts the registry API. Reads are public; mutations require a
// bearer token established by requireAuth.
func (h *Handler) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/token", h.IssueToken)

	r.Get("/status", h.Status)
	r.Get("/stats", h.Statistics)
	r.Get("/reports", h.ReportsByPlatform)
	r.Get("/reports/count", h.TotalReports)
	r.Get("/reports/high-risk", h.HighRiskReports)
	r.Get("/reports/{index}", h.GetReport)
	r.Get("/agencies/{agencyID}", h.AgencyInfo)
	r.Get("/platforms/{platform}/count", h.PlatformCount)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/agencies", h.RegisterAgency)
		r.Post("/reports", h.SubmitReport)
		r.Post("/reports/{index}/verify", h.VerifyReport)
		r.Post("/reports/{index}/action", h.MarkActionTaken)
		r.Post("/admin/pause", h.TogglePause)
		r.Post("/admin/transfer", h.TransferOwnership)
	})

	return r
}

// IssueToken exchanges an agency id and API key for a bearer token.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	agencyID := id.AgencyID(req.AgencyID)
	if err := h.service.AuthenticateAgency(r.Context(), agencyID, req.APIKey); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.tokens.GenerateToken(agencyID)
	if err != nil {
		h.writeError(w, r, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token"))
		return
	}
	h.writeJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokens.TTL().Seconds()),
	})
}

// RegisterAgency authorizes an agency. Owner only.
func (h *Handler) RegisterAgency(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req models.RegisterAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	agency, apiKey, err := h.service.RegisterAgency(r.Context(), caller, id.AgencyID(req.AgencyID), req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, models.RegisterAgencyResponse{Agency: agency, APIKey: apiKey})
}

// SubmitReport appends a report to the ledger.
func (h *Handler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req models.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	report, err := h.service.SubmitReport(r.Context(), caller, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, models.SubmitReportResponse{
		Index:     report.Index,
		Verified:  report.Verified,
		RiskLevel: report.RiskLevel(),
	})
}

// VerifyReport records peer confirmation of a report.
func (h *Handler) VerifyReport(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	index, err := h.pathIndex(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	report, err := h.service.VerifyReport(r.Context(), caller, index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.NewReportView(report))
}

// MarkActionTaken records the remediation outcome for a report.
func (h *Handler) MarkActionTaken(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	index, err := h.pathIndex(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req models.MarkActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	report, err := h.service.MarkActionTaken(r.Context(), caller, index, req.Action)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.NewReportView(report))
}

// TogglePause flips the emergency stop. Owner only.
func (h *Handler) TogglePause(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	paused, err := h.service.TogglePause(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.PauseResponse{Paused: paused})
}

// TransferOwnership hands the registry to a new owner. Owner only.
func (h *Handler) TransferOwnership(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req models.TransferOwnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.service.TransferOwnership(r.Context(), caller, id.AgencyID(req.NewOwner)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetReport returns one report by ledger index.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	index, err := h.pathIndex(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	report, err := h.service.GetReport(r.Context(), index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.NewReportView(report))
}

// ReportsByPlatform pages the indices of one platform's reports.
func (h *Handler) ReportsByPlatform(w http.ResponseWriter, r *http.Request) {
	platform := r.URL.Query().Get("platform")
	if platform == "" {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "platform query parameter is required"))
		return
	}
	offset, err := h.queryInt(r, "offset", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limit, err := h.queryInt(r, "limit", DefaultListLimit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	indices, err := h.service.ReportsByPlatform(r.Context(), platform, offset, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.IndexListResponse{Indices: indices, Count: len(indices)})
}

// HighRiskReports lists the most recent high-risk indices.
func (h *Handler) HighRiskReports(w http.ResponseWriter, r *http.Request) {
	limit, err := h.queryInt(r, "limit", DefaultListLimit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	indices, err := h.service.HighRiskReports(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.IndexListResponse{Indices: indices, Count: len(indices)})
}

// Statistics returns the aggregate counts.
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Statistics(r.Context()))
}

// AgencyInfo returns the public agency record; unknown ids get the empty
// default rather than an error.
func (h *Handler) AgencyInfo(w http.ResponseWriter, r *http.Request) {
	agencyID := id.AgencyID(chi.URLParam(r, "agencyID"))
	h.writeJSON(w, http.StatusOK, h.service.AgencyInfo(r.Context(), agencyID))
}

// PlatformCount returns the submission count for one platform.
func (h *Handler) PlatformCount(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	h.writeJSON(w, http.StatusOK, models.PlatformCountResponse{
		Platform: platform,
		Count:    h.service.PlatformCount(r.Context(), platform),
	})
}

// TotalReports returns the ledger length.
func (h *Handler) TotalReports(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.TotalReportsResponse{Total: h.service.TotalReports(r.Context())})
}

// Status reports the control-plane view: owner, pause flag, ledger size.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"owner":  h.service.Owner().String(),
		"paused": h.service.Paused(),
		"total":  h.service.TotalReports(r.Context()),
	})
}

func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (id.AgencyID, bool) {
	caller := requestcontext.AgencyID(r.Context())
	if caller.IsZero() {
		h.writeError(w, r, dErrors.New(dErrors.CodeUnauthorized, "missing caller identity"))
		return "", false
	}
	return caller, true
}

func (h *Handler) pathIndex(r *http.Request) (int64, error) {
	index, err := strconv.ParseInt(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidIndex, "report index must be an integer")
	}
	return index, nil
}

func (h *Handler) queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, name+" must be an integer")
	}
	return v, nil
}
