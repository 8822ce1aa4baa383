package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"studytrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSigningConfig() {
	config.AppConfig = &config.Config{
		JWTKey:       "test-signing-key",
		UploadDir:    "./uploads",
		PublicURL:    "http://localhost:3000",
		SignedURLTTL: 3600,
	}
}

func TestCreateSignedURLRoundTrip(t *testing.T) {
	setupSigningConfig()

	signed := CreateSignedURL("abc123.pdf", 600)
	assert.True(t, strings.HasPrefix(signed, "http://localhost:3000/files?"))

	parsed, err := url.Parse(signed)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "abc123.pdf", q.Get("path"))

	err = VerifySignedPath(q.Get("path"), q.Get("exp"), q.Get("sig"))
	assert.NoError(t, err)
}

func TestVerifySignedPathRejectsTampering(t *testing.T) {
	setupSigningConfig()

	exp := time.Now().Add(time.Hour).Unix()
	expStr := strconv.FormatInt(exp, 10)
	sig := signPath("abc123.pdf", exp)

	// Swapping the path invalidates the signature
	err := VerifySignedPath("other.pdf", expStr, sig)
	assert.ErrorIs(t, err, ErrBadSignature)

	// Extending the expiry invalidates it too
	later := strconv.FormatInt(exp+3600, 10)
	err = VerifySignedPath("abc123.pdf", later, sig)
	assert.ErrorIs(t, err, ErrBadSignature)

	// Garbage expiry never verifies
	err = VerifySignedPath("abc123.pdf", "not-a-number", sig)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifySignedPathExpired(t *testing.T) {
	setupSigningConfig()

	exp := time.Now().Add(-time.Minute).Unix()
	sig := signPath("abc123.pdf", exp)

	// A valid but stale signature reads as expired, not forged
	err := VerifySignedPath("abc123.pdf", strconv.FormatInt(exp, 10), sig)
	assert.ErrorIs(t, err, ErrURLExpired)
}

func TestCreateSignedURLDefaultTTL(t *testing.T) {
	setupSigningConfig()

	signed := CreateSignedURL("abc123.pdf", 0)
	parsed, err := url.Parse(signed)
	require.NoError(t, err)

	exp, err := strconv.ParseInt(parsed.Query().Get("exp"), 10, 64)
	require.NoError(t, err)

	window := exp - time.Now().Unix()
	assert.Greater(t, window, int64(3500), fmt.Sprintf("expected default TTL window, got %d", window))
	assert.LessOrEqual(t, window, int64(3600))
}

func TestResolveStoragePath(t *testing.T) {
	setupSigningConfig()

	path, err := ResolveStoragePath("abc123.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "uploads/abc123.pdf", path)

	_, err = ResolveStoragePath("../secrets.env")
	assert.ErrorIs(t, err, ErrBadSignature)

	_, err = ResolveStoragePath("")
	assert.ErrorIs(t, err, ErrBadSignature)
}
