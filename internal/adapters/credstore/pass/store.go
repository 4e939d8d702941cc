// Package pass keeps credentials in the standard unix password manager
// (https://www.passwordstore.org) when the pass binary is on PATH. Entries
// are namespaced under a sweetshop/ folder so they do not collide with the
// user's own passwords.
package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/maelys-dev/sweetshop-cli/internal/ports"
)

const entryFolder = "sweetshop"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

type Store struct {
	folder string
	run    runFunc
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{folder: entryFolder, run: runPassCommand}
}

// entryName maps a credential key to its pass entry path.
func (s *Store) entryName(key string) string {
	return s.folder + "/" + key
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, value+"\n", "insert", "-m", "-f", s.entryName(key))
	if err != nil {
		return passError("put", key, err, stderr)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, "", "show", s.entryName(key))
	if err != nil {
		return "", passError("get", key, err, stderr)
	}

	// pass echoes the entry with a trailing newline.
	return strings.TrimRight(stdout, "\r\n"), nil
}

// Delete removes the entry. A missing entry is a no-op so Delete matches the
// semantics of the file fallback.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "-f", s.entryName(key))
	if err != nil {
		if isMissingEntry(stderr) {
			return nil
		}
		return passError("delete", key, err, stderr)
	}
	return nil
}

func isMissingEntry(stderr string) bool {
	return strings.Contains(stderr, "is not in the password store")
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func passError(op, key string, err error, stderr string) error {
	if stderr != "" {
		return fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
	}
	return fmt.Errorf("pass %s %q: %w", op, key, err)
}
