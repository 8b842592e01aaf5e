package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/coopbat/intake-api/internal/api/metrics"
	"github.com/coopbat/intake-api/internal/core/domain"
	"github.com/coopbat/intake-api/internal/core/ports"
)

// IntakeService validates submissions and appends them to the archive.
// Each kind has its own required-field set; a failed validation persists
// nothing and reports every missing field at once.
type IntakeService struct {
	repo   ports.RequestRepository
	logger zerolog.Logger
}

func NewIntakeService(repo ports.RequestRepository, logger zerolog.Logger) *IntakeService {
	return &IntakeService{repo: repo, logger: logger}
}

func (s *IntakeService) SubmitSimple(ctx context.Context, input ports.SubmitSimpleInput) (int64, error) {
	if missing := missingFields(map[string]string{
		"name":       input.Name,
		"email":      input.Email,
		"commune":    input.Commune,
		"surface_m2": input.SurfaceM2,
	}); len(missing) > 0 {
		return 0, &domain.ValidationError{Missing: missing}
	}

	lotType := trimmed(input.LotType)
	if lotType == "" {
		lotType = "lot"
	}

	req := &domain.SimpleRequest{
		CreatedAt: time.Now().UTC(),
		Name:      trimmed(input.Name),
		Email:     domain.NormalizeEmail(input.Email),
		Commune:   trimmed(input.Commune),
		SurfaceM2: trimmed(input.SurfaceM2),
		LotType:   lotType,
		Budget:    trimmed(input.Budget),
		Message:   trimmed(input.Message),

		CoverType:      trimmed(input.CoverType),
		CoverSurfaceM2: trimmed(input.CoverSurfaceM2),
		Insulation:     input.Insulation,
		Sarking:        input.Sarking,

		GouttiereML:      trimmed(input.GouttiereML),
		HabillageRivesML: trimmed(input.HabillageRivesML),
		HabillageMurM2:   trimmed(input.HabillageMurM2),
		CouvertureZincM2: trimmed(input.CouvertureZincM2),
		TourChemineeNb:   trimmed(input.TourChemineeNb),

		CharpOptions: compactList(input.CharpOptions),
		SubmittedBy:  input.SubmittedBy,
	}

	id, err := s.repo.InsertSimple(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to archive simple request")
		return 0, err
	}

	metrics.RequestsSubmittedTotal.WithLabelValues(string(domain.KindSimple)).Inc()
	s.logger.Info().Int64("id", id).Str("commune", req.Commune).Msg("simple request archived")
	return id, nil
}

func (s *IntakeService) SubmitLead(ctx context.Context, input ports.SubmitLeadInput) (int64, error) {
	if missing := missingFields(map[string]string{
		"contact_name":          input.ContactName,
		"contact_commune":       input.ContactCommune,
		"contact_email":         input.ContactEmail,
		"couverture_surface_m2": input.CouvertureSurfaceM2,
	}); len(missing) > 0 {
		return 0, &domain.ValidationError{Missing: missing}
	}

	req := &domain.LeadRequest{
		CreatedAt: time.Now().UTC(),

		CouvertureType:      trimmed(input.CouvertureType),
		CouvertureSurfaceM2: trimmed(input.CouvertureSurfaceM2),
		CouvertureIsolation: input.CouvertureIsolation,
		CouvertureSarking:   input.CouvertureSarking,
		CouvertureEcran:     input.CouvertureEcran,

		Zinguerie: input.Zinguerie,
		Charpente: compactList(input.Charpente),

		ContactName:    trimmed(input.ContactName),
		ContactCommune: trimmed(input.ContactCommune),
		ContactEmail:   domain.NormalizeEmail(input.ContactEmail),
		ContactMessage: trimmed(input.ContactMessage),
	}

	id, err := s.repo.InsertLead(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to archive lead request")
		return 0, err
	}

	metrics.RequestsSubmittedTotal.WithLabelValues(string(domain.KindLead)).Inc()
	s.logger.Info().Int64("id", id).Str("commune", req.ContactCommune).Msg("lead request archived")
	return id, nil
}

func (s *IntakeService) SubmitAdvanced(ctx context.Context, input ports.SubmitAdvancedInput) (int64, error) {
	if missing := missingFields(map[string]string{
		"contact_name":    input.ContactName,
		"contact_commune": input.ContactCommune,
		"contact_email":   input.ContactEmail,
	}); len(missing) > 0 {
		return 0, &domain.ValidationError{Missing: missing}
	}

	payload := input.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	req := &domain.AdvancedRequest{
		CreatedAt:      time.Now().UTC(),
		ContactName:    trimmed(input.ContactName),
		ContactCommune: trimmed(input.ContactCommune),
		ContactEmail:   domain.NormalizeEmail(input.ContactEmail),
		Payload:        payload,
	}

	id, err := s.repo.InsertAdvanced(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to archive advanced request")
		return 0, err
	}

	metrics.RequestsSubmittedTotal.WithLabelValues(string(domain.KindAdvanced)).Inc()
	s.logger.Info().Int64("id", id).Str("commune", req.ContactCommune).Msg("advanced request archived")
	return id, nil
}

// missingFields returns the keys whose trimmed value is empty.
func missingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func compactList(values []string) []string {
	var out []string
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
