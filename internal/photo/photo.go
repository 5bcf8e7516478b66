// Package photo stores plant photos. Guest photos are embedded inline as data
// URLs; signed-in users' photos go to an object store and only the URL is kept
// on the plant row.
package photo

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// MaxSize caps an uploaded photo at 5 MiB.
const MaxSize = 5 << 20

// PhotoStore persists photo bytes and returns a URL that resolves to them.
type PhotoStore interface {
	Put(ctx context.Context, ownerID, plantID, name string, data []byte) (string, error)
}

// FSPhotoStore keeps photos under Root/<owner>/<plant><ext> and hands out
// file:// URLs.
type FSPhotoStore struct {
	Root string
}

var _ PhotoStore = (*FSPhotoStore)(nil)

func NewFSPhotoStore(root string) *FSPhotoStore {
	return &FSPhotoStore{Root: root}
}

func (s *FSPhotoStore) Put(ctx context.Context, ownerID, plantID, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := Validate(name, data); err != nil {
		return "", err
	}

	dir := filepath.Join(s.Root, safeSegment(ownerID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating photo directory: %w", err)
	}
	path := filepath.Join(dir, safeSegment(plantID)+strings.ToLower(filepath.Ext(name)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing photo: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving photo path: %w", err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// DataURL encodes data inline as a base64 data URL.
func DataURL(name string, data []byte) (string, error) {
	if err := Validate(name, data); err != nil {
		return "", err
	}
	return "data:" + ContentType(name, data) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Validate rejects empty, oversized and non-image payloads.
func Validate(name string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("photo %s is empty", name)
	}
	if len(data) > MaxSize {
		return fmt.Errorf("photo %s is %d bytes, limit is %d", name, len(data), MaxSize)
	}
	if ct := ContentType(name, data); !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("photo %s is not an image (%s)", name, ct)
	}
	return nil
}

// ContentType sniffs the payload. The file extension is consulted only when
// sniffing finds nothing (application/octet-stream), so a text file named
// .png still reads as text.
func ContentType(name string, data []byte) string {
	ct := http.DetectContentType(data)
	if ct != "application/octet-stream" {
		return ct
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); strings.HasPrefix(byExt, "image/") {
		return strings.SplitN(byExt, ";", 2)[0]
	}
	return ct
}

func safeSegment(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
	if s == "" {
		return "_"
	}
	return s
}
