package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// RequestKind tags the three submission shapes. Request ids are assigned
// per kind, so a bare id is never globally unique — (Kind, ID) is the only
// identity valid outside a kind's own archive.
type RequestKind string

const (
	KindSimple   RequestKind = "simple"
	KindLead     RequestKind = "lead"
	KindAdvanced RequestKind = "advanced"
)

var ErrUnknownKind = errors.New("unknown request kind")

// ParseKind validates a kind string coming off the wire.
func ParseKind(s string) (RequestKind, error) {
	switch RequestKind(s) {
	case KindSimple, KindLead, KindAdvanced:
		return RequestKind(s), nil
	}
	return "", ErrUnknownKind
}

// RequestRef uniquely identifies a request across the whole system.
type RequestRef struct {
	Kind RequestKind `json:"kind"`
	ID   int64       `json:"id"`
}

// ValidationError reports the required fields missing from a submission.
// Nothing is persisted when it is returned.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	m := append([]string(nil), e.Missing...)
	sort.Strings(m)
	return fmt.Sprintf("missing required fields: %s", strings.Join(m, ", "))
}

// SimpleRequest is the classic estimation form (mobile client).
type SimpleRequest struct {
	ID        int64     `json:"id" bson:"id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Commune   string `json:"commune" bson:"commune"`
	SurfaceM2 string `json:"surface_m2" bson:"surface_m2"`

	LotType string `json:"lot_type" bson:"lot_type"`
	Budget  string `json:"budget,omitempty" bson:"budget,omitempty"`
	Message string `json:"message,omitempty" bson:"message,omitempty"`

	CoverType      string `json:"cover_type,omitempty" bson:"cover_type,omitempty"`
	CoverSurfaceM2 string `json:"cover_surface_m2,omitempty" bson:"cover_surface_m2,omitempty"`
	Insulation     bool   `json:"insulation" bson:"insulation"`
	Sarking        bool   `json:"sarking" bson:"sarking"`

	GouttiereML      string `json:"gouttiere_ml,omitempty" bson:"gouttiere_ml,omitempty"`
	HabillageRivesML string `json:"habillage_rives_ml,omitempty" bson:"habillage_rives_ml,omitempty"`
	HabillageMurM2   string `json:"habillage_mur_m2,omitempty" bson:"habillage_mur_m2,omitempty"`
	CouvertureZincM2 string `json:"couverture_zinc_m2,omitempty" bson:"couverture_zinc_m2,omitempty"`
	TourChemineeNb   string `json:"tour_cheminee_nb,omitempty" bson:"tour_cheminee_nb,omitempty"`

	CharpOptions []string `json:"charp_options,omitempty" bson:"charp_options,omitempty"`

	// SubmittedBy links the request to a pro account when the submission
	// carried a valid session. Empty for anonymous submissions.
	SubmittedBy string `json:"submitted_by,omitempty" bson:"submitted_by,omitempty"`
}

// ZinguerieLine is one checked quantity line of the lot form.
type ZinguerieLine struct {
	Key   string `json:"key" bson:"key"`
	Label string `json:"label" bson:"label"`
	Unit  string `json:"unit" bson:"unit"`
	Qty   string `json:"qty" bson:"qty"`
}

// LeadRequest is the full-lot estimation (web "chiffrage lot complet").
type LeadRequest struct {
	ID        int64     `json:"id" bson:"id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	CouvertureType      string `json:"couverture_type" bson:"couverture_type"`
	CouvertureSurfaceM2 string `json:"couverture_surface_m2" bson:"couverture_surface_m2"`
	CouvertureIsolation bool   `json:"couverture_isolation" bson:"couverture_isolation"`
	CouvertureSarking   bool   `json:"couverture_sarking" bson:"couverture_sarking"`
	CouvertureEcran     bool   `json:"couverture_ecran" bson:"couverture_ecran"`

	Zinguerie []ZinguerieLine `json:"zinguerie,omitempty" bson:"zinguerie,omitempty"`
	Charpente []string        `json:"charpente,omitempty" bson:"charpente,omitempty"`

	ContactName    string `json:"contact_name" bson:"contact_name"`
	ContactCommune string `json:"contact_commune" bson:"contact_commune"`
	ContactEmail   string `json:"contact_email" bson:"contact_email"`
	ContactMessage string `json:"contact_message,omitempty" bson:"contact_message,omitempty"`
}

// AdvancedRequest is the detailed estimation: identified contact plus an
// opaque structured payload the office prices by hand.
type AdvancedRequest struct {
	ID        int64     `json:"id" bson:"id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	ContactName    string         `json:"contact_name" bson:"contact_name"`
	ContactCommune string         `json:"contact_commune" bson:"contact_commune"`
	ContactEmail   string         `json:"contact_email" bson:"contact_email"`
	Payload        map[string]any `json:"payload" bson:"payload"`
}
