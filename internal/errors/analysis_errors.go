package errors

import (
	"fmt"
	"strings"
)

// Analysis pipeline error kinds. DecodeError and UnsupportedDocumentError are
// fatal for the request; a balance mismatch is reported through the logger
// and never surfaces as an error (see internal/statement).

// labelSampleCap bounds how many discovered labels a diagnostic message
// carries, keeping error payloads finite on garbled documents.
const labelSampleCap = 10

// DecodeError wraps a container-level failure from one of the document
// decoders. The underlying decoder error is surfaced verbatim.
type DecodeError struct {
	Format string // "xlsx", "docx", "txt"
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s document: %v", e.Format, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// NewDecodeError creates a DecodeError for the given container format.
func NewDecodeError(format string, cause error) *DecodeError {
	return &DecodeError{Format: format, Cause: cause}
}

// RequiredFieldError reports that a required canonical field matched no raw
// label after both exact and partial synonym matching. It carries enough
// context for the user to see what was looked for and what the document
// actually contained.
type RequiredFieldError struct {
	Field       string   // canonical field name
	Synonyms    []string // up to three suggested synonyms, priority order
	FoundLabels []string // sample of raw labels discovered, capped
}

func (e *RequiredFieldError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "required field %q not found", e.Field)
	if len(e.Synonyms) > 0 {
		fmt.Fprintf(&b, "; expected a line such as %q", e.Synonyms[0])
		if len(e.Synonyms) > 1 {
			fmt.Fprintf(&b, " (also tried: %s)", strings.Join(e.Synonyms[1:], ", "))
		}
	}
	if len(e.FoundLabels) > 0 {
		fmt.Fprintf(&b, "; labels present in document: %s", strings.Join(e.FoundLabels, ", "))
	}
	return b.String()
}

// NewRequiredFieldError creates a RequiredFieldError, truncating synonyms to
// three and found labels to the documented cap.
func NewRequiredFieldError(field string, synonyms, foundLabels []string) *RequiredFieldError {
	if len(synonyms) > 3 {
		synonyms = synonyms[:3]
	}
	if len(foundLabels) > labelSampleCap {
		foundLabels = foundLabels[:labelSampleCap]
	}
	return &RequiredFieldError{Field: field, Synonyms: synonyms, FoundLabels: foundLabels}
}

// UnsupportedDocumentError reports a document the pipeline cannot work with
// at all, such as an image-only scan with no text layer. Guidance tells the
// user how to produce a supported input.
type UnsupportedDocumentError struct {
	Reason   string
	Guidance string
}

func (e *UnsupportedDocumentError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Guidance)
	}
	return e.Reason
}

// NewUnsupportedDocumentError creates an UnsupportedDocumentError.
func NewUnsupportedDocumentError(reason, guidance string) *UnsupportedDocumentError {
	return &UnsupportedDocumentError{Reason: reason, Guidance: guidance}
}
