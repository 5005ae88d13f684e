package audio

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const base64Marker = ";base64,"

// ParseDataURI decodes an "<mime>;base64,<payload>" string into raw audio
// bytes. Strings without the marker are treated as bare base64.
func ParseDataURI(value string) ([]byte, error) {
	payload := strings.TrimSpace(value)
	if index := strings.Index(payload, base64Marker); index >= 0 {
		payload = payload[index+len(base64Marker):]
	}
	if payload == "" {
		return nil, fmt.Errorf("%w: empty base64 payload", ErrMediaDecode)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 payload", ErrMediaDecode)
	}
	return decoded, nil
}
