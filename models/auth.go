package models

// Request body for `/login`
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	// Hex encoded MD5 digest of the password, never the plaintext.
	Password string `json:"password" validate:"required,len=32,hexadecimal"`
}

// Response body for `/login`
type LoginResponse struct {
	JWEToken string `json:"jweToken"`
}
