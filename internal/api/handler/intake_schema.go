package handler

// errorResponse documents the standard error envelope returned on all
// 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// simpleRequestPayload is the classic estimation form. Required-field
// enforcement lives in the intake service so all missing fields are
// reported together; the validate tags only reject malformed values.
type simpleRequestPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Commune   string `json:"commune"`
	SurfaceM2 string `json:"surface_m2"`

	LotType string `json:"lot_type"`
	Budget  string `json:"budget"`
	Message string `json:"message"`

	CoverType      string `json:"cover_type"`
	CoverSurfaceM2 string `json:"cover_surface_m2"`
	Insulation     bool   `json:"insulation"`
	Sarking        bool   `json:"sarking"`

	GouttiereML      string `json:"gouttiere_ml"`
	HabillageRivesML string `json:"habillage_rives_ml"`
	HabillageMurM2   string `json:"habillage_mur_m2"`
	CouvertureZincM2 string `json:"couverture_zinc_m2"`
	TourChemineeNb   string `json:"tour_cheminee_nb"`

	CharpOptions []string `json:"charp_options"`
}

type zinguerieLinePayload struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Unit  string `json:"unit"`
	Qty   string `json:"qty"`
}

type leadRequestPayload struct {
	CouvertureType      string `json:"couverture_type"`
	CouvertureSurfaceM2 string `json:"couverture_surface_m2"`
	CouvertureIsolation bool   `json:"couverture_isolation"`
	CouvertureSarking   bool   `json:"couverture_sarking"`
	CouvertureEcran     bool   `json:"couverture_ecran"`

	Zinguerie []zinguerieLinePayload `json:"zinguerie"`
	Charpente []string               `json:"charpente"`

	ContactName    string `json:"contact_name"`
	ContactCommune string `json:"contact_commune"`
	ContactEmail   string `json:"contact_email" validate:"omitempty,email"`
	ContactMessage string `json:"contact_message"`
}

type advancedRequestPayload struct {
	ContactName    string         `json:"contact_name"`
	ContactCommune string         `json:"contact_commune"`
	ContactEmail   string         `json:"contact_email" validate:"omitempty,email"`
	Payload        map[string]any `json:"payload"`
}

type submitResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
