package entity

// ObjectMetadata holds GridFS metadata for a stored object. The download
// token is the capability embedded in the object's public URL; access is
// granted by presenting it, not by storage-level permissions.
type ObjectMetadata struct {
	MIMEType     string `bson:"mime_type"`
	CacheControl string `bson:"cache_control,omitempty"`
	Token        string `bson:"token"`
	PropertyID   string `bson:"property_id,omitempty"`
	JobID        string `bson:"job_id,omitempty"`
}
