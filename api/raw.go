package api

import "unicode/utf8"

// DefaultRawBodyLimit is how many characters of an undecodable body are kept
// on a DecodeError.
const DefaultRawBodyLimit = 1024

// TruncateRaw trims raw to at most limit runes. A non-positive limit yields
// an empty string.
func TruncateRaw(raw string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(raw) <= limit {
		return raw
	}
	return string([]rune(raw)[:limit])
}
