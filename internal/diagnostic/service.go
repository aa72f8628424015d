package diagnostic

import (
	"context"

	"github.com/rs/zerolog"

	"vetocheck-api/internal/catalog"
	"vetocheck-api/internal/logger"
)

// ReportService delivers a summary of a worrying diagnostic to the on-call
// veterinary channel. Defined here to decouple from the PDF/Telegram
// implementation.
type ReportService interface {
	SendVetReport(ctx context.Context, profile AnimalProfile, result DiagnosticResult) error
}

type Service interface {
	RunDiagnostic(ctx context.Context, answers []Answer, profile AnimalProfile) DiagnosticResult
}

type service struct {
	cat       *catalog.Catalog
	reportSvc ReportService
	log       zerolog.Logger
}

func NewService(cat *catalog.Catalog, reportSvc ReportService) Service {
	return &service{
		cat:       cat,
		reportSvc: reportSvc,
		log:       logger.New("diagnostic"),
	}
}

// RunDiagnostic evaluates the questionnaire and, for red results, hands the
// report off in the background so the caller gets its result immediately.
func (s *service) RunDiagnostic(ctx context.Context, answers []Answer, profile AnimalProfile) DiagnosticResult {
	result := Compute(s.cat, answers, profile)

	s.log.Info().
		Str("species", string(profile.Species)).
		Str("risk_level", string(result.RiskLevel)).
		Int("score", result.Score).
		Int("uncertainty_rate", result.UncertaintyRate).
		Int("patterns", len(result.DangerousPatterns)).
		Msg("diagnostic completed")

	if result.RiskLevel == RiskRed && s.reportSvc != nil {
		go func() {
			// Detached context: the report must not be cancelled when the
			// HTTP request finishes.
			bgCtx := context.Background()
			if err := s.reportSvc.SendVetReport(bgCtx, profile, result); err != nil {
				s.log.Error().Err(err).Msg("failed to send vet report")
			}
		}()
	}

	return result
}
