package isbn

import (
	"strconv"
	"strings"
)

// Width is the canonical ISBN-13 digit count.
const Width = 13

// Normalize turns an arbitrary spreadsheet cell value into a canonical
// 13-character numeric ISBN string. It never fails.
//
// Spreadsheet tools silently render long digit strings in scientific
// notation ("9.78E+12"); such values are expanded back into whole digits
// before stripping, otherwise catalog lookups miss for no visible reason.
// Digit strings longer than 13 pass through neither padded nor truncated.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.ContainsAny(s, "eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			s = strconv.FormatFloat(f, 'f', 0, 64)
		}
	}

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	s = b.String()

	if len(s) < Width {
		s = strings.Repeat("0", Width-len(s)) + s
	}
	return s
}
