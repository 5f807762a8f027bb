package auth

import (
	"stock-tracker-backend/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// Identity is the authenticated principal attached to ledger writes.
type Identity struct {
	Username string
}

// CredentialVerifier is the pluggable credential check. The default
// implementation verifies the single operator account from the environment;
// production deployments swap in a real identity provider here.
type CredentialVerifier interface {
	Verify(username, password string) (*Identity, bool)
}

// EnvVerifier checks credentials against the configured admin username and
// bcrypt password hash.
type EnvVerifier struct {
	username     string
	passwordHash string
}

func NewEnvVerifier(cfg *config.Config) *EnvVerifier {
	return &EnvVerifier{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
	}
}

func (v *EnvVerifier) Verify(username, password string) (*Identity, bool) {
	if username != v.username {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)); err != nil {
		return nil, false
	}
	return &Identity{Username: username}, true
}
