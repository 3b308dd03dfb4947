package constants

// OCRJobStatus is the status reported by the OCR backend for an async job.
type OCRJobStatus string

// Stable values (match the backend's wire strings exactly).
const (
	OCRJobSubmitted  OCRJobStatus = "SUBMITTED"   // accepted, not started
	OCRJobInProgress OCRJobStatus = "IN_PROGRESS" // running
	OCRJobSucceeded  OCRJobStatus = "SUCCEEDED"   // terminal success
	OCRJobFailed     OCRJobStatus = "FAILED"      // terminal failure
)

// Terminal reports whether the status ends the polling loop.
func (s OCRJobStatus) Terminal() bool {
	return s == OCRJobSucceeded || s == OCRJobFailed
}

// ExtractionMethod records how the text in an ExtractionResult was obtained.
type ExtractionMethod string

const (
	MethodCache ExtractionMethod = "cache" // reused a persisted raw extract
	MethodSync  ExtractionMethod = "sync"  // single-call OCR detect
	MethodAsync ExtractionMethod = "async" // submitted job + polled to completion
)
