package dto

import "tradeledger/internal/service"

// SignupRequest represents the signup request payload
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupResponse confirms a created user. No token: signup does not log
// the user in.
type SignupResponse struct {
	Message string `json:"message"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the login response body; the embedded user record
// omits its password hash.
type LoginResponse = service.LoginResult
