// Package auth stores Porkbun API credentials in the OS keychain.
package auth

import "errors"

const ServiceName = "oink"

// Keychain entry names for the two credential halves.
const (
	APIKeyEntry    = "api-key"
	SecretKeyEntry = "secret-api-key"
)

var ErrNotFound = errors.New("credential not found")

// Store persists named secrets.
type Store interface {
	Set(key string, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// DefaultStore returns the standard store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// Credentials is an API key pair loaded from a store.
type Credentials struct {
	APIKey    string
	SecretKey string
}

// Save writes both credential halves to the store.
func Save(store Store, creds Credentials) error {
	if err := store.Set(APIKeyEntry, creds.APIKey); err != nil {
		return err
	}
	return store.Set(SecretKeyEntry, creds.SecretKey)
}

// Load reads both credential halves. A missing entry yields ErrNotFound.
func Load(store Store) (Credentials, error) {
	apiKey, err := store.Get(APIKeyEntry)
	if err != nil {
		return Credentials{}, err
	}
	secretKey, err := store.Get(SecretKeyEntry)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{APIKey: apiKey, SecretKey: secretKey}, nil
}

// Delete removes both credential halves. Missing entries are ignored so
// logout is idempotent.
func Delete(store Store) error {
	if err := store.Delete(APIKeyEntry); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := store.Delete(SecretKeyEntry); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
