package leavemarker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// FileTokenStore persists the bearer token and serialized identity to a
// single JSON file with user-only permissions. It backs the legacy bearer
// mode; cookie mode keeps no durable client state.
type FileTokenStore struct {
	Path string
}

type storedCredentials struct {
	Token    string    `json:"token"`
	Identity *Identity `json:"identity"`
}

func (f *FileTokenStore) Save(token string, identity *Identity) error {
	b, err := json.Marshal(storedCredentials{Token: token, Identity: identity})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	return os.WriteFile(f.Path, b, 0o600)
}

func (f *FileTokenStore) Load() (string, *Identity, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, err
	}
	var creds storedCredentials
	if err := json.Unmarshal(b, &creds); err != nil {
		return "", nil, fmt.Errorf("corrupt credentials file: %w", err)
	}
	return creds.Token, creds.Identity, nil
}

func (f *FileTokenStore) Clear() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// TokenExpiry peeks at the access token's exp claim without verifying the
// signature (the server is the verifier; this only lets the client warn
// before sending a request that is guaranteed to 401). Zero time means no
// expiry claim.
func TokenExpiry(token string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, err
	}
	return exp.Time, nil
}
