package dto

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login: el token a presentar como Bearer.
type LoginResponse struct {
	Token string `json:"token"`
}
