package service

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"fraudregistry/internal/audit"
	"fraudregistry/internal/platform/metrics"
	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
	"fraudregistry/pkg/requestcontext"
)

func hashAPIKey(apiKey string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash api key")
	}
	return hash, nil
}

// RegisterAgency authorizes an agency to use the registry and issues a fresh
// API key. Only the owner may call it. Re-registering an existing agency
// updates its name, re-asserts authorization, and rotates the key, but never
// resets the submission counters: history outlives the credential.
//
// The plaintext key is returned exactly once; only its bcrypt hash is kept.
func (s *Service) RegisterAgency(ctx context.Context, caller, agencyID id.AgencyID, name string) (models.Agency, string, error) {
	ctx, span := s.tracer.Start(ctx, "registry.RegisterAgency",
		trace.WithAttributes(attribute.String("agency.id", agencyID.String())))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireNotPaused(); err != nil {
		return models.Agency{}, "", err
	}
	if err := s.access.RequireOwner(caller); err != nil {
		return models.Agency{}, "", err
	}

	fresh, err := models.NewAgency(agencyID, name, requestcontext.Now(ctx))
	if err != nil {
		return models.Agency{}, "", err
	}
	staged := *fresh
	if existing, ok := s.directory.Snapshot(agencyID); ok {
		staged.TotalReports = existing.TotalReports
		staged.VerifiedReports = existing.VerifiedReports
		staged.RegisteredAt = existing.RegisteredAt
	}

	apiKey := uuid.NewString()
	staged.APIKeyHash, err = hashAPIKey(apiKey)
	if err != nil {
		return models.Agency{}, "", err
	}

	if err := s.store.UpsertAgency(ctx, staged); err != nil {
		return models.Agency{}, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist agency")
	}
	s.directory.Put(staged)

	s.metrics.IncAgenciesRegistered()
	s.auditor.Emit(ctx, audit.Event{
		Type:        audit.EventAgencyRegistered,
		AgencyID:    agencyID.String(),
		ReportIndex: -1,
		Detail:      staged.Name,
		Client:      audit.ClientInfoFromContext(ctx),
	})
	s.logger.InfoContext(ctx, "agency registered",
		"agency_id", agencyID.String(),
		"agency_name", staged.Name,
	)

	view := staged
	view.APIKeyHash = nil
	return view, apiKey, nil
}

// SubmitReport appends a new report to the ledger on behalf of an authorized
// agency. Validation runs in full before anything changes; the accepted report
// is persisted before the in-memory commit, so a store failure rejects the
// submission cleanly. Reports at or above the auto-verify threshold enter the
// ledger already verified.
func (s *Service) SubmitReport(ctx context.Context, caller id.AgencyID, req models.SubmitReportRequest) (models.Report, error) {
	ctx, span := s.tracer.Start(ctx, "registry.SubmitReport",
		trace.WithAttributes(
			attribute.String("report.platform", req.Platform),
			attribute.Int("report.risk_score", req.RiskScore),
		))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireNotPaused(); err != nil {
		return models.Report{}, err
	}
	if err := s.directory.RequireAuthorized(caller); err != nil {
		return models.Report{}, err
	}

	report, err := models.NewReport(
		req.Platform, req.Username, req.RiskScore, req.Evidence,
		id.ReportID(req.ReportID), caller, requestcontext.Now(ctx),
	)
	if err != nil {
		return models.Report{}, err
	}
	if err := s.ledger.RequireFreshID(report.ReportID); err != nil {
		return models.Report{}, err
	}
	report.Index = s.ledger.NextIndex()

	autoVerified := s.engine.AutoVerifyOnSubmit(report)

	reporter, _ := s.directory.Snapshot(caller)
	reporter.TotalReports++
	if autoVerified {
		reporter.VerifiedReports++
	}

	if err := s.store.AppendReport(ctx, *report); err != nil {
		return models.Report{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist report")
	}
	if err := s.store.UpsertAgency(ctx, reporter); err != nil {
		return models.Report{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist reporter counters")
	}

	s.ledger.Append(report)
	s.directory.Put(reporter)
	s.queries.RecordSubmission(report.Platform)

	s.metrics.IncReportsSubmitted()
	s.metrics.SetLedgerSize(s.ledger.Len())
	if autoVerified {
		s.metrics.IncReportsVerified(metrics.VerifyModeAuto)
	}

	client := audit.ClientInfoFromContext(ctx)
	s.auditor.Emit(ctx, audit.Event{
		Type:        audit.EventReportSubmitted,
		AgencyID:    caller.String(),
		ReportIndex: report.Index,
		ReportID:    report.ReportID.String(),
		Platform:    report.Platform,
		RiskScore:   report.RiskScore,
		Client:      client,
	})
	if autoVerified {
		s.auditor.Emit(ctx, audit.Event{
			Type:        audit.EventReportVerified,
			AgencyID:    caller.String(),
			ReportIndex: report.Index,
			ReportID:    report.ReportID.String(),
			Platform:    report.Platform,
			RiskScore:   report.RiskScore,
			Detail:      metrics.VerifyModeAuto,
			Client:      client,
		})
	}

	s.logger.InfoContext(ctx, "report submitted",
		"report_index", report.Index,
		"report_id", report.ReportID.String(),
		"platform", report.Platform,
		"risk_score", report.RiskScore,
		"auto_verified", autoVerified,
	)
	return *report, nil
}

// VerifyReport records a peer agency's confirmation of the report at index.
// The caller must be authorized and must not be the original reporter.
func (s *Service) VerifyReport(ctx context.Context, caller id.AgencyID, index int64) (models.Report, error) {
	ctx, span := s.tracer.Start(ctx, "registry.VerifyReport",
		trace.WithAttributes(attribute.Int64("report.index", index)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireNotPaused(); err != nil {
		return models.Report{}, err
	}
	if err := s.directory.RequireAuthorized(caller); err != nil {
		return models.Report{}, err
	}

	stage, err := s.engine.StageVerify(caller, index)
	if err != nil {
		return models.Report{}, err
	}

	if err := s.store.UpdateReportStatus(ctx, index, stage.Report.Verified, stage.Report.ActionTaken, stage.Report.Action); err != nil {
		return models.Report{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist verification")
	}
	if err := s.store.UpsertAgency(ctx, stage.Reporter); err != nil {
		return models.Report{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist reporter counters")
	}

	s.engine.CommitVerify(stage)

	s.metrics.IncReportsVerified(metrics.VerifyModePeer)
	s.auditor.Emit(ctx, audit.Event{
		Type:        audit.EventReportVerified,
		AgencyID:    caller.String(),
		ReportIndex: index,
		ReportID:    stage.Report.ReportID.String(),
		Platform:    stage.Report.Platform,
		RiskScore:   stage.Report.RiskScore,
		Detail:      metrics.VerifyModePeer,
		Client:      audit.ClientInfoFromContext(ctx),
	})
	s.logger.InfoContext(ctx, "report verified",
		"report_index", index,
		"verifier", caller.String(),
		"reporter", stage.Report.ReporterID.String(),
	)
	return stage.Report, nil
}

// MarkActionTaken records the remediation outcome for a verified report.
func (s *Service) MarkActionTaken(ctx context.Context, caller id.AgencyID, index int64, action string) (models.Report, error) {
	ctx, span := s.tracer.Start(ctx, "registry.MarkActionTaken",
		trace.WithAttributes(attribute.Int64("report.index", index)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireNotPaused(); err != nil {
		return models.Report{}, err
	}
	if err := s.directory.RequireAuthorized(caller); err != nil {
		return models.Report{}, err
	}

	stage, err := s.engine.StageAction(index, action)
	if err != nil {
		return models.Report{}, err
	}

	if err := s.store.UpdateReportStatus(ctx, index, stage.Report.Verified, stage.Report.ActionTaken, stage.Report.Action); err != nil {
		return models.Report{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist action")
	}

	s.engine.CommitAction(stage)

	s.metrics.IncActionsTaken()
	s.auditor.Emit(ctx, audit.Event{
		Type:        audit.EventActionTaken,
		AgencyID:    caller.String(),
		ReportIndex: index,
		ReportID:    stage.Report.ReportID.String(),
		Platform:    stage.Report.Platform,
		RiskScore:   stage.Report.RiskScore,
		Detail:      stage.Report.Action,
		Client:      audit.ClientInfoFromContext(ctx),
	})
	s.logger.InfoContext(ctx, "action recorded",
		"report_index", index,
		"agency_id", caller.String(),
	)
	return stage.Report, nil
}

// TogglePause flips the emergency stop and returns the new state. Exempt from
// the pause gate itself, otherwise a paused registry could never resume.
func (s *Service) TogglePause(ctx context.Context, caller id.AgencyID) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "registry.TogglePause")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireOwner(caller); err != nil {
		return s.access.Paused(), err
	}

	next := !s.access.Paused()
	if err := s.store.SaveControl(ctx, s.access.Owner(), next); err != nil {
		return s.access.Paused(), dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist control state")
	}
	paused, _ := s.access.TogglePause(caller)

	detail := "resumed"
	if paused {
		detail = "paused"
	}
	s.auditor.Emit(ctx, audit.Event{
		Type:        audit.EventPauseToggled,
		AgencyID:    caller.String(),
		ReportIndex: -1,
		Detail:      detail,
		Client:      audit.ClientInfoFromContext(ctx),
	})
	s.logger.WarnContext(ctx, "registry pause toggled", "paused", paused)
	return paused, nil
}

// TransferOwnership hands control to a new owner identity. Exempt from the
// pause gate so a paused registry can still change hands. The new owner need
// not be a registered agency.
func (s *Service) TransferOwnership(ctx context.Context, caller, newOwner id.AgencyID) error {
	ctx, span := s.tracer.Start(ctx, "registry.TransferOwnership",
		trace.WithAttributes(attribute.String("owner.new", newOwner.String())))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.access.RequireOwner(caller); err != nil {
		return err
	}
	if newOwner.IsZero() {
		return dErrors.New(dErrors.CodeInvalidOwner, "new owner identity must not be empty")
	}

	if err := s.store.SaveControl(ctx, newOwner, s.access.Paused()); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist control state")
	}
	if err := s.access.TransferOwnership(caller, newOwner); err != nil {
		return err
	}

	s.auditor.Emit(ctx, audit.Event{
		Type:        audit.EventOwnershipTransferred,
		AgencyID:    caller.String(),
		ReportIndex: -1,
		Detail:      newOwner.String(),
		Client:      audit.ClientInfoFromContext(ctx),
	})
	s.logger.WarnContext(ctx, "registry ownership transferred",
		"previous_owner", caller.String(),
		"new_owner", newOwner.String(),
	)
	return nil
}

// AuthenticateAgency checks an agency's API key ahead of token issuance.
// Failures are deliberately indistinguishable: unknown id, revoked
// authorization, and wrong key all return the same error.
func (s *Service) AuthenticateAgency(_ context.Context, agencyID id.AgencyID, apiKey string) error {
	s.mu.RLock()
	agency, ok := s.directory.Snapshot(agencyID)
	s.mu.RUnlock()

	if !ok || !agency.Authorized || len(agency.APIKeyHash) == 0 {
		return dErrors.New(dErrors.CodeUnauthorized, "invalid agency credentials")
	}
	if err := bcrypt.CompareHashAndPassword(agency.APIKeyHash, []byte(apiKey)); err != nil {
		return dErrors.New(dErrors.CodeUnauthorized, "invalid agency credentials")
	}
	return nil
}
