package auth

import (
	"crypto/md5"
	"encoding/hex"
	"errors"

	"github.com/holdcloud/hcctl/models"
)

// Username and plaintext password for the platform.
// The password only lives in process memory and leaves it as a digest.
type Credentials struct {
	Username string
	Password string
}

// Returns the hex encoded MD5 digest of the password, as the login endpoint expects it.
func Digest(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Validate that both username and password are set.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return errors.New("username is required")
	}
	if c.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// Build the `/login` request body.
func (c Credentials) LoginRequest() models.LoginRequest {
	return models.LoginRequest{
		Username: c.Username,
		Password: Digest(c.Password),
	}
}

// Redacts the password when credentials are printed.
func (c Credentials) String() string {
	return c.Username + ":<redacted>"
}
