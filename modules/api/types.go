package api

import "time"

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer token issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents a user response.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TareaRequest is the task write payload. The field names keep the original
// API's Spanish wire format. State, owner, and creation time are absent on
// purpose: the server assigns them and ignores any client attempt.
type TareaRequest struct {
	Titulo           string    `json:"titulo"`
	Descripcion      string    `json:"descripcion"`
	FechaVencimiento time.Time `json:"fechaVencimiento"`
}

// TareaResponse is the task read payload. It names the state and never
// embeds the owning user.
type TareaResponse struct {
	ID               string    `json:"id"`
	Titulo           string    `json:"titulo"`
	Descripcion      string    `json:"descripcion"`
	FechaCreacion    time.Time `json:"fechaCreacion"`
	FechaVencimiento time.Time `json:"fechaVencimiento"`
	Estado           string    `json:"estado"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
