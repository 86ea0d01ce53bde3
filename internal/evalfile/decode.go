// internal/evalfile/decode.go
// Package evalfile parses Twinkle Eval result files into a flat record table
// and per-dataset accuracy averages.
package evalfile

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// decodeCandidates are tried in order after strict UTF-8. Result files come
// from a mix of locales and editors; the UTF-16 variants cover BOM-carrying
// exports and the Big5 table also covers cp950.
var decodeCandidates = []encoding.Encoding{
	unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	traditionalchinese.Big5,
}

// DecodeBytes turns raw file content into text. It tries strict UTF-8 first,
// then each candidate encoding, and finally falls back to lossy UTF-8 with
// undecodable bytes dropped. It always returns a string and never fails.
func DecodeBytes(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	for _, enc := range decodeCandidates {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		// The x/text decoders substitute U+FFFD instead of failing, so a
		// replacement rune in the output marks the candidate as a miss.
		if !strings.ContainsRune(string(decoded), utf8.RuneError) {
			return string(decoded)
		}
	}
	return strings.ToValidUTF8(string(raw), "")
}
