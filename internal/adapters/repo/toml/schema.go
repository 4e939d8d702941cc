package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int         `toml:"version"`
	User    *userSchema `toml:"user"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type userSchema struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Email   string `toml:"email"`
	Role    string `toml:"role"`
	Blocked bool   `toml:"is_blocked,omitempty"`
}
