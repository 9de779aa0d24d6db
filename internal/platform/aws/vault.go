package aws

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// ErrVaultOpen is returned when sealed data fails authentication.
var ErrVaultOpen = errors.New("failed to open sealed secret")

// Vault keeps a secret sealed in memory with a per-process random key, so
// the plaintext only exists while it is being used.
type Vault struct {
	key    [32]byte
	nonce  [24]byte
	sealed []byte
}

// Seal encrypts secret into a new Vault.
func Seal(secret string) (*Vault, error) {
	v := &Vault{}
	if _, err := rand.Read(v.key[:]); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	if _, err := rand.Read(v.nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	v.sealed = secretbox.Seal(nil, []byte(secret), &v.nonce, &v.key)
	return v, nil
}

// Open decrypts the secret.
func (v *Vault) Open() (string, error) {
	out, ok := secretbox.Open(nil, v.sealed, &v.nonce, &v.key)
	if !ok {
		return "", ErrVaultOpen
	}
	return string(out), nil
}
