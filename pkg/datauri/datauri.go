// Package datauri handles the data:<mime>;base64,<payload> strings the API
// uses for all image and PDF interchange.
package datauri

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const prefix = "data:"

// Parse splits a data URI into its MIME type and decoded payload.
func Parse(s string) (string, []byte, error) {
	if !strings.HasPrefix(s, prefix) {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(s[len(prefix):], ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI: missing payload separator")
	}
	mime, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return "", nil, fmt.Errorf("unsupported data URI encoding")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URI payload: %w", err)
	}
	return mime, data, nil
}

// Format renders raw bytes as a data URI with the given MIME type.
func Format(mime string, data []byte) string {
	return fmt.Sprintf("%s%s;base64,%s", prefix, mime, base64.StdEncoding.EncodeToString(data))
}

// DecodePayload decodes either a full data URI or a bare base64 string.
// Report PDFs arrive in both forms.
func DecodePayload(s string) ([]byte, error) {
	if strings.HasPrefix(s, prefix) {
		_, data, err := Parse(s)
		return data, err
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64 payload: %w", err)
	}
	return data, nil
}

// IsDataURI reports whether the string carries the data URI scheme.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, prefix)
}
