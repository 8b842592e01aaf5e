package handler

// --- Request / Response types ---

type proRegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type proRegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type proLoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

type artisanRegisterRequest struct {
	ContactName string `json:"contact_name" validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=6"`
	Commune     string `json:"commune"      validate:"required"`
	RadiusKm    int    `json:"radius_km"`
	Phone       string `json:"phone"`
	ZoneNote    string `json:"zone_note"`
}

type artisanRegisterResponse struct {
	Message   string `json:"message"`
	ArtisanID string `json:"artisan_id"`
}

// artisanLoginResponse returns the plaintext session token exactly once;
// the server keeps only its digest. Field names match the mobile client.
type artisanLoginResponse struct {
	Message      string `json:"message"`
	ArtisanID    string `json:"artisan_id"`
	ArtisanToken string `json:"artisan_token"`
	ContactName  string `json:"contact_name"`
	Email        string `json:"email"`
	Commune      string `json:"commune"`
	RadiusKm     int    `json:"radius_km"`
	Phone        string `json:"phone,omitempty"`
	ZoneNote     string `json:"zone_note,omitempty"`
}

type okResponse struct {
	OK bool `json:"ok"`
}
