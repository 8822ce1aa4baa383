package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"studytrack/config"
	"time"

	"github.com/google/uuid"
)

var (
	ErrURLExpired   = errors.New("signed URL has expired")
	ErrBadSignature = errors.New("invalid URL signature")
)

func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Create a unique filename
	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	// The storage key is the filename, not the full disk path
	return newFilename, nil
}

// signPath computes the HMAC signature covering a storage key and its expiry
func signPath(path string, exp int64) string {
	mac := hmac.New(sha256.New, []byte(config.AppConfig.JWTKey))
	fmt.Fprintf(mac, "%s:%d", path, exp)
	return hex.EncodeToString(mac.Sum(nil))
}

// CreateSignedURL builds a time-limited download URL for a stored file.
// ttlSeconds <= 0 falls back to the configured default window.
func CreateSignedURL(path string, ttlSeconds int) string {
	if ttlSeconds <= 0 {
		ttlSeconds = config.AppConfig.SignedURLTTL
	}
	exp := time.Now().Add(time.Duration(ttlSeconds) * time.Second).Unix()
	sig := signPath(path, exp)

	q := url.Values{}
	q.Set("path", path)
	q.Set("exp", strconv.FormatInt(exp, 10))
	q.Set("sig", sig)

	return config.AppConfig.PublicURL + "/files?" + q.Encode()
}

// VerifySignedPath checks a download request's signature and expiry
func VerifySignedPath(path, expStr, sig string) error {
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return ErrBadSignature
	}

	expected := signPath(path, exp)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return ErrBadSignature
	}

	if time.Now().Unix() > exp {
		return ErrURLExpired
	}
	return nil
}

// ResolveStoragePath maps a storage key to its location on disk, rejecting
// keys that try to escape the upload directory.
func ResolveStoragePath(key string) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", ErrBadSignature
	}
	return filepath.Join(config.AppConfig.UploadDir, key), nil
}
