package resumecheck

import (
	"bytes"
)

// MaxResumeBytes is the upload ceiling for resumes (2 MiB).
const MaxResumeBytes = 2 * 1024 * 1024

// Status of a resume check. A missing file is not an error: the application
// form submits fine without one.
type Status string

const (
	StatusAbsent   Status = "absent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Result contains the outcome of a resume check. Exactly one of the
// accepted/rejected states is produced per call; Reason is set only on
// rejection.
type Result struct {
	Status   Status `json:"status"`
	FileName string `json:"fileName,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Accepted resume MIME types: PDF, legacy Word, OOXML Word.
var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Magic byte prefixes per accepted MIME type, for spoofing detection.
var magicBytes = map[string][][]byte{
	"application/pdf":    {{0x25, 0x50, 0x44, 0x46}}, // %PDF
	"application/msword": {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {{0x50, 0x4B, 0x03, 0x04}}, // ZIP (PK..)
}

// Absent returns the distinct not-erroneous state for "no file supplied".
func Absent() Result {
	return Result{Status: StatusAbsent}
}

// Check validates a supplied resume file against the type and size rules.
// head is the leading bytes of the content; pass nil to skip the content
// cross-check (e.g. when only metadata is available).
func Check(filename string, size int64, mimeType string, head []byte) Result {
	if !allowedMIMETypes[mimeType] {
		return Result{Status: StatusRejected, Reason: "File must be PDF or Word document"}
	}

	if size > MaxResumeBytes {
		return Result{Status: StatusRejected, Reason: "File size must be less than 2MB"}
	}

	if len(head) > 0 && !matchesMagicBytes(mimeType, head) {
		return Result{Status: StatusRejected, Reason: "File content does not match its declared type"}
	}

	return Result{Status: StatusAccepted, FileName: filename}
}

// matchesMagicBytes checks if the content starts with a signature expected
// for the declared MIME type.
func matchesMagicBytes(mimeType string, head []byte) bool {
	signatures, ok := magicBytes[mimeType]
	if !ok {
		return false
	}
	for _, sig := range signatures {
		if len(head) >= len(sig) && bytes.HasPrefix(head, sig) {
			return true
		}
	}
	return false
}
