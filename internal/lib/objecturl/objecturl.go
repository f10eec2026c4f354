// Package objecturl builds capability-token download URLs for stored
// objects. Access control is the token embedded in the query string,
// not storage-level permissions.
package objecturl

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// NewToken returns a fresh download token.
func NewToken() string {
	return uuid.NewString()
}

// Download constructs the public URL for an object. The storage path is
// escaped as a single segment, slashes included.
func Download(base, bucket, path, token string) string {
	return fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media&token=%s",
		base, bucket, url.PathEscape(path), token)
}
