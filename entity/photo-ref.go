package entity

import (
	"go.mongodb.org/mongo-driver/bson"
)

// photoURLFields is the precedence order for resolving a display URL out of
// a legacy photo object. Direct URL fields first, then storage-path fields
// that need resolving through the object URL builder.
var photoURLFields = []struct {
	key    string
	isPath bool
}{
	{"downloadURL", false},
	{"url", false},
	{"href", false},
	{"src", false},
	{"storagePath", true},
	{"fullPath", true},
	{"path", true},
}

// ResolvePhotoURL maps a stored photo entry of any legacy shape to a
// displayable URL. Entries may be a bare URL string, a structured Photo,
// or an object carrying its URL under one of several historical keys.
// resolvePath turns a bare storage path into a public URL; it may be nil,
// in which case path-only entries resolve to the raw path.
func ResolvePhotoURL(raw any, resolvePath func(path string) string) string {
	switch v := raw.(type) {
	case string:
		return v
	case Photo:
		return v.URL
	case *Photo:
		return v.URL
	case map[string]any:
		return resolveFromMap(v, resolvePath)
	case bson.M:
		return resolveFromMap(v, resolvePath)
	case bson.D:
		m := make(map[string]any, len(v))
		for _, e := range v {
			m[e.Key] = e.Value
		}
		return resolveFromMap(m, resolvePath)
	}
	return ""
}

func resolveFromMap(m map[string]any, resolvePath func(path string) string) string {
	for _, field := range photoURLFields {
		value, ok := m[field.key].(string)
		if !ok || value == "" {
			continue
		}
		if field.isPath {
			if resolvePath != nil {
				return resolvePath(value)
			}
		}
		return value
	}
	return ""
}
