package ports

import (
	"context"

	"github.com/coopbat/intake-api/internal/core/domain"
)

type SubmitSimpleInput struct {
	Name      string
	Email     string
	Commune   string
	SurfaceM2 string

	LotType string
	Budget  string
	Message string

	CoverType      string
	CoverSurfaceM2 string
	Insulation     bool
	Sarking        bool

	GouttiereML      string
	HabillageRivesML string
	HabillageMurM2   string
	CouvertureZincM2 string
	TourChemineeNb   string

	CharpOptions []string

	// SubmittedBy is the pro user id when the call carried a valid session.
	SubmittedBy string
}

type SubmitLeadInput struct {
	CouvertureType      string
	CouvertureSurfaceM2 string
	CouvertureIsolation bool
	CouvertureSarking   bool
	CouvertureEcran     bool

	Zinguerie []domain.ZinguerieLine
	Charpente []string

	ContactName    string
	ContactCommune string
	ContactEmail   string
	ContactMessage string
}

type SubmitAdvancedInput struct {
	ContactName    string
	ContactCommune string
	ContactEmail   string
	Payload        map[string]any
}

// IntakeService validates and archives submissions. A failed validation
// persists nothing.
type IntakeService interface {
	SubmitSimple(ctx context.Context, input SubmitSimpleInput) (int64, error)
	SubmitLead(ctx context.Context, input SubmitLeadInput) (int64, error)
	SubmitAdvanced(ctx context.Context, input SubmitAdvancedInput) (int64, error)
}
