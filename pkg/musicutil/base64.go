package musicutil

import (
	"encoding/base64"
	"strings"
)

var strictStdEncoding = base64.StdEncoding.Strict()

// DecodeBase64 decodes standard, padded base64. Malformed input (bad
// characters, wrong padding, truncation, non-zero trailing bits) yields an
// empty slice instead of an error.
func DecodeBase64(input string) []byte {
	// encoding/base64 silently skips CR and LF; they are not part of the alphabet here.
	if strings.ContainsAny(input, "\r\n") {
		return []byte{}
	}
	out, err := strictStdEncoding.DecodeString(input)
	if err != nil {
		return []byte{}
	}
	return out
}
