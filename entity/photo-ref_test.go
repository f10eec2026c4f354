package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestResolvePhotoURLPlainString(t *testing.T) {
	got := ResolvePhotoURL("https://example.com/a.jpg", nil)
	assert.Equal(t, "https://example.com/a.jpg", got)
}

func TestResolvePhotoURLFieldPrecedence(t *testing.T) {
	resolve := func(p string) string { return "resolved:" + p }

	tests := []struct {
		name     string
		raw      any
		expected string
	}{
		{
			name:     "downloadURL beats everything",
			raw:      map[string]any{"downloadURL": "dl", "url": "u", "path": "p"},
			expected: "dl",
		},
		{
			name:     "url beats href",
			raw:      map[string]any{"href": "h", "url": "u"},
			expected: "u",
		},
		{
			name:     "href beats src",
			raw:      map[string]any{"src": "s", "href": "h"},
			expected: "h",
		},
		{
			name:     "src beats storagePath",
			raw:      map[string]any{"storagePath": "sp", "src": "s"},
			expected: "s",
		},
		{
			name:     "storagePath resolved through builder",
			raw:      map[string]any{"storagePath": "x/y.jpg"},
			expected: "resolved:x/y.jpg",
		},
		{
			name:     "fullPath resolved through builder",
			raw:      map[string]any{"fullPath": "x/y.jpg"},
			expected: "resolved:x/y.jpg",
		},
		{
			name:     "path resolved through builder",
			raw:      map[string]any{"path": "x/y.jpg"},
			expected: "resolved:x/y.jpg",
		},
		{
			name:     "empty values skipped",
			raw:      map[string]any{"downloadURL": "", "url": "u"},
			expected: "u",
		},
		{
			name:     "nothing usable",
			raw:      map[string]any{"size": 42},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolvePhotoURL(tt.raw, resolve))
		})
	}
}

func TestResolvePhotoURLBsonShapes(t *testing.T) {
	resolve := func(p string) string { return "resolved:" + p }

	assert.Equal(t, "dl", ResolvePhotoURL(bson.M{"downloadURL": "dl"}, resolve))
	assert.Equal(t, "resolved:x/y.jpg", ResolvePhotoURL(bson.D{{Key: "fullPath", Value: "x/y.jpg"}}, resolve))
}

func TestResolvePhotoURLStructuredPhoto(t *testing.T) {
	photo := Photo{URL: "https://example.com/p.jpg"}
	assert.Equal(t, "https://example.com/p.jpg", ResolvePhotoURL(photo, nil))
	assert.Equal(t, "https://example.com/p.jpg", ResolvePhotoURL(&photo, nil))
}

func TestResolvePhotoURLNilResolverFallsBackToRawPath(t *testing.T) {
	got := ResolvePhotoURL(map[string]any{"fullPath": "x/y.jpg"}, nil)
	assert.Equal(t, "x/y.jpg", got)
}

func TestResolvePhotoURLUnknownShape(t *testing.T) {
	assert.Empty(t, ResolvePhotoURL(42, nil))
	assert.Empty(t, ResolvePhotoURL(nil, nil))
}
