package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutNamespacesEntries(t *testing.T) {
	var gotInput string
	var gotArgs []string
	store := &Store{folder: entryFolder, run: func(_ context.Context, input string, args ...string) (string, string, error) {
		gotInput = input
		gotArgs = args
		return "", "", nil
	}}

	require.NoError(t, store.Put(context.Background(), "session_token", "tok-1"))

	assert.Equal(t, "tok-1\n", gotInput)
	assert.Equal(t, []string{"insert", "-m", "-f", "sweetshop/session_token"}, gotArgs)
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	store := &Store{folder: entryFolder, run: func(context.Context, string, ...string) (string, string, error) {
		return "tok-1\r\n", "", nil
	}}

	value, err := store.Get(context.Background(), "session_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", value)
}

func TestStoreDeleteMissingEntryIsNoop(t *testing.T) {
	store := &Store{folder: entryFolder, run: func(context.Context, string, ...string) (string, string, error) {
		return "", "Error: sweetshop/session_token is not in the password store.", errors.New("exit status 1")
	}}

	assert.NoError(t, store.Delete(context.Background(), "session_token"))
}

func TestStoreDeleteSurfacesOtherFailures(t *testing.T) {
	store := &Store{folder: entryFolder, run: func(context.Context, string, ...string) (string, string, error) {
		return "", "gpg: decryption failed", errors.New("exit status 2")
	}}

	err := store.Delete(context.Background(), "session_token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpg: decryption failed")
}

func TestStoreSurfacesStderr(t *testing.T) {
	store := &Store{folder: entryFolder, run: func(context.Context, string, ...string) (string, string, error) {
		return "", "gpg: decryption failed", errors.New("exit status 2")
	}}

	_, err := store.Get(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpg: decryption failed")
}

func TestStoreUnavailableBinary(t *testing.T) {
	store := &Store{folder: entryFolder, run: func(context.Context, string, ...string) (string, string, error) {
		return "", "", ErrUnavailable
	}}

	err := store.Put(context.Background(), "k", "v")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStoreCancelledContext(t *testing.T) {
	store := NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "k", "v"), context.Canceled)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Delete(ctx, "k"), context.Canceled)
}
