package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CredentialFile persists the access credential across invocations, the
// CLI's stand-in for the browser cookie the web front end sets on login.
// Only the raw token is stored; identity fields are re-derived by the
// backend on each request.
type CredentialFile struct {
	Path string
}

// Save writes the credential, creating the parent directory as needed.
// The file is user-readable only.
func (c CredentialFile) Save(token string) error {
	if c.Path == "" {
		return errors.New("session: credential path not configured")
	}

	if err := os.MkdirAll(filepath.Dir(c.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}
	if err := os.WriteFile(c.Path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}
	return nil
}

// Load reads the persisted credential. A missing file is not an error; it
// just means nobody is logged in.
func (c CredentialFile) Load() (string, error) {
	if c.Path == "" {
		return "", nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the persisted credential. Clearing an absent file is a
// no-op.
func (c CredentialFile) Clear() error {
	if c.Path == "" {
		return nil
	}

	if err := os.Remove(c.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove credential: %w", err)
	}
	return nil
}
