// Package attachment handles file content carried inline on entities as
// base64 data URLs (photos, resumes, permits, receipts). There is no object
// storage in this system: the data URL string is the stored value, and
// download endpoints decode it back to bytes on demand.
package attachment

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/glowtours/backoffice/internal/domain"
)

const dataURLPrefix = "data:"

// Kind restricts which media types a given attachment field accepts.
type Kind string

const (
	// KindImage accepts image content only (candidate and worker photos).
	KindImage Kind = "image"
	// KindDocument accepts images and PDFs (resumes, permits, receipts).
	KindDocument Kind = "document"
)

// Attachment is the decoded form of a data URL.
type Attachment struct {
	MediaType string
	Data      []byte
}

// Parse decodes a base64 data URL of the form "data:<media-type>;base64,<payload>".
// Returns domain.ErrValidation (via ValidationError) when the input is not a
// well-formed data URL.
func Parse(dataURL string) (*Attachment, error) {
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		return nil, invalid("must be a data URL")
	}

	meta, payload, ok := strings.Cut(dataURL[len(dataURLPrefix):], ",")
	if !ok {
		return nil, invalid("missing payload separator")
	}

	mediaType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, invalid("only base64 encoding is supported")
	}
	if mediaType == "" {
		return nil, invalid("missing media type")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, invalid(fmt.Sprintf("malformed base64 payload: %v", err))
	}

	return &Attachment{MediaType: mediaType, Data: data}, nil
}

// Validate checks that dataURL parses, its media type is allowed for the
// given kind, and the decoded payload does not exceed maxBytes. An empty
// dataURL is valid: attachments are optional on every entity.
func Validate(dataURL string, kind Kind, maxBytes int) error {
	if dataURL == "" {
		return nil
	}

	att, err := Parse(dataURL)
	if err != nil {
		return err
	}
	if !kind.allows(att.MediaType) {
		return invalid(fmt.Sprintf("media type %q not allowed for %s attachments", att.MediaType, kind))
	}
	if maxBytes > 0 && len(att.Data) > maxBytes {
		return invalid(fmt.Sprintf("decoded size %d exceeds limit of %d bytes", len(att.Data), maxBytes))
	}
	return nil
}

func (k Kind) allows(mediaType string) bool {
	switch k {
	case KindImage:
		return strings.HasPrefix(mediaType, "image/")
	case KindDocument:
		return strings.HasPrefix(mediaType, "image/") || mediaType == "application/pdf"
	default:
		return false
	}
}

func invalid(msg string) error {
	return &domain.ValidationError{Fields: map[string]string{"attachment": msg}}
}
