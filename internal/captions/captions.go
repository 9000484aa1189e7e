// Package captions decodes caption files into pipeline caption events.
package captions

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"clipstruct/internal/pipeline"
)

// Format identifies a caption file encoding.
type Format string

const (
	// FormatJSON is a JSON array of {text, start, duration} objects. A JSON
	// object with an "events" key is decoded as json3.
	FormatJSON Format = "json"
	// FormatJSON3 is the YouTube timedtext json3 format.
	FormatJSON3 Format = "json3"
	// FormatSRV1 is the YouTube timedtext XML format.
	FormatSRV1 Format = "srv1"
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
)

// ErrUnknownFormat is returned for file extensions or format names that
// cannot be decoded.
var ErrUnknownFormat = errors.New("unknown caption format")

var extFormats = map[string]Format{
	".json":  FormatJSON,
	".json3": FormatJSON3,
	".srv1":  FormatSRV1,
	".xml":   FormatSRV1,
	".srt":   FormatSRT,
	".vtt":   FormatVTT,
}

// ParseFormat converts a format name such as "srt" into a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range extFormats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Base(path))
}

// Load reads and decodes a caption file, choosing the format by extension.
func Load(path string) ([]pipeline.CaptionEvent, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read captions: %w", err)
	}

	events, err := DecodeBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return events, nil
}

// Decode reads all of r and decodes it as format.
func Decode(r io.Reader, format Format) ([]pipeline.CaptionEvent, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read captions: %w", err)
	}
	return DecodeBytes(data, format)
}

// DecodeBytes decodes data as format. Events keep their file order and carry
// no Index; the normalizer assigns it.
func DecodeBytes(data []byte, format Format) ([]pipeline.CaptionEvent, error) {
	switch format {
	case FormatJSON:
		if isJSONObject(data) {
			return decodeJSON3(data)
		}
		return decodeJSON(data)
	case FormatJSON3:
		return decodeJSON3(data)
	case FormatSRV1:
		return decodeSRV1(data)
	case FormatSRT, FormatVTT:
		return decodeCues(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func isJSONObject(data []byte) bool {
	data = bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	return len(data) > 0 && data[0] == '{'
}
