// Package filename sanitizes user-supplied file names for object storage
// paths and appends uniqueness suffixes to avoid collisions.
package filename

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	unsafe     = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

// Sanitize replaces whitespace runs with underscores and strips every
// character outside [A-Za-z0-9._-]. Idempotent: sanitizing an already
// sanitized name returns it unchanged.
func Sanitize(name string) string {
	name = whitespace.ReplaceAllString(name, "_")
	return unsafe.ReplaceAllString(name, "")
}

// WithSuffix inserts a suffix between the base name and the extension:
// "photo.JPG" + "abc" -> "photo_abc.JPG".
func WithSuffix(name, suffix string) string {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%s%s", base, suffix, ext)
}

// Unique sanitizes the name and appends a timestamp-plus-random-hex
// suffix before the extension.
func Unique(name string) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	suffix := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
	return WithSuffix(Sanitize(name), suffix)
}
