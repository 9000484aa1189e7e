package pipeline

import "errors"

var (
	// ErrEmptyInput is returned when there are no caption events or no
	// segments to work with.
	ErrEmptyInput = errors.New("no usable captions")

	// ErrInvalidOverride is returned when a manual edit would produce an
	// impossible segment.
	ErrInvalidOverride = errors.New("invalid segment override")
)

// UserMessage maps a pipeline error to the text shown to an end user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return "No usable captions were found for this video."
	case errors.Is(err, ErrInvalidOverride):
		return "The edited segment is not valid."
	default:
		return "Structure analysis failed."
	}
}
