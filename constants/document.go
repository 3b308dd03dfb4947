package constants

import "strings"

// DocumentType is the canonical kind of an uploaded document.
type DocumentType string

const (
	// DocumentTypeCV is a résumé / curriculum vitae.
	DocumentTypeCV DocumentType = "cv"
	// DocumentTypeJD is a job description.
	DocumentTypeJD DocumentType = "jd"
)

// DocumentTypes holds the allowed values for the document_type field.
var DocumentTypes = []string{string(DocumentTypeCV), string(DocumentTypeJD)}

// ParseDocumentType normalizes and validates a document type string.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cv", "resume":
		return DocumentTypeCV, true
	case "jd", "job", "job_description":
		return DocumentTypeJD, true
	default:
		return "", false
	}
}

// AllowedExtensions holds the default allowed file extensions for uploaded documents.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ContentTypeForExt maps a file extension to a MIME content type.
func ContentTypeForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "application/pdf"
	case "doc":
		return "application/msword"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "txt":
		return "text/plain"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
