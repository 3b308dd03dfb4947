package entity

// SourceDocument describes a stored upload as seen through a head probe.
// It is created externally on upload and immutable per fingerprint: a re-upload
// of the same logical document yields a new fingerprint under the same
// document ID.
type SourceDocument struct {
	StoreKey    string `json:"store_key"`
	OwnerID     string `json:"owner_id"`
	DocumentID  string `json:"document_id"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	// Fingerprint is an opaque, equality-comparable version token for the
	// object's bytes (the store's ETag).
	Fingerprint string `json:"fingerprint"`
}
