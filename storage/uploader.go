package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// SnapshotKey names the object a published standings table is stored under.
func SnapshotKey(tournamentID string, takenAt time.Time) string {
	return fmt.Sprintf("standings/%s/%s.json", tournamentID, takenAt.UTC().Format("20060102T150405Z"))
}

// PublicURL joins a public base URL and an object key with exactly one slash.
// It returns "" when either part is missing or the base does not parse.
func PublicURL(baseURL, key string) string {
	if baseURL == "" || key == "" {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return ""
	}
	base.Path = strings.TrimSuffix(base.Path, "/") + "/" + strings.TrimPrefix(key, "/")
	return base.String()
}
