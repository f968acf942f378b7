package incident

import (
	"encoding/json"
	"fmt"

	"lastmile/internal/pkg/errs"
)

// EvidenceType classifies a piece of collected evidence.
type EvidenceType int

const (
	// EvidenceTypeUnknown represents an invalid or undefined evidence type.
	EvidenceTypeUnknown EvidenceType = iota

	// EvidencePhoto is a photographic attachment.
	EvidencePhoto

	// EvidenceVideo is a video attachment.
	EvidenceVideo

	// EvidenceText is a free-form textual statement.
	EvidenceText

	// EvidenceAudio is an audio recording.
	EvidenceAudio

	// EvidenceDocument is any other document attachment.
	EvidenceDocument
)

func evidenceTypeStrings() map[EvidenceType]string {
	return map[EvidenceType]string{
		EvidenceTypeUnknown: "unknown",
		EvidencePhoto:       "photo",
		EvidenceVideo:       "video",
		EvidenceText:        "text",
		EvidenceAudio:       "audio",
		EvidenceDocument:    "document",
	}
}

// String returns the lowercase wire representation of the evidence type.
func (t EvidenceType) String() string {
	if name, ok := evidenceTypeStrings()[t]; ok {
		return name
	}
	return fmt.Sprintf("EvidenceType(%d)", int(t))
}

// IsValid reports whether the type is one of the defined evidence kinds.
func (t EvidenceType) IsValid() bool {
	switch t {
	case EvidencePhoto, EvidenceVideo, EvidenceText, EvidenceAudio, EvidenceDocument:
		return true
	default:
		return false
	}
}

// MarshalJSON encodes the type as its wire string.
func (t EvidenceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the type from its wire string.
func (t *EvidenceType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	parsed, err := ParseEvidenceType(name)
	if err != nil {
		return fmt.Errorf("evidence type %q: %w", name, err)
	}
	*t = parsed
	return nil
}

// ParseEvidenceType converts a wire string into an EvidenceType.
func ParseEvidenceType(value string) (EvidenceType, error) {
	for evidenceType, name := range evidenceTypeStrings() {
		if evidenceType != EvidenceTypeUnknown && name == value {
			return evidenceType, nil
		}
	}
	return EvidenceTypeUnknown, errs.NewValueIsInvalidError("evidence type")
}

// Evidence is a single collected evidence item. Evidence is never stored on
// its own; items are serialized into the metadata blob of the Incident they
// were collected for.
type Evidence struct {
	// Type is the kind of evidence (photo, video, text, audio, document).
	Type EvidenceType `json:"type"`

	// URL points at the attachment, when the evidence is a file.
	URL string `json:"url,omitempty"`

	// Description is a free-form account of what the evidence shows.
	Description string `json:"description,omitempty"`

	// Location is where the evidence was captured, when known.
	Location string `json:"location,omitempty"`

	// Tags are keyword labels; derived automatically when absent.
	Tags []string `json:"tags,omitempty"`
}

// Validate checks that the evidence item carries a valid type.
func (e Evidence) Validate() error {
	if !e.Type.IsValid() {
		return errs.NewValueIsInvalidError("evidence type")
	}
	return nil
}
