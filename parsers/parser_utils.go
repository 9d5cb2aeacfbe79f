package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// SkipBOM skips a UTF-8 BOM if present.
func SkipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom := []byte{0xEF, 0xBB, 0xBF}
	peeked, err := br.Peek(3)
	if err != nil {
		return br
	}
	isBOM := true
	for i, b := range bom {
		if peeked[i] != b {
			isBOM = false
			break
		}
	}
	if isBOM {
		br.Read(make([]byte, 3))
	}
	return br
}

// getColIndex maps header names to column indexes.
func getColIndex(header []string, required []string) (map[string]int, error) {
	colIndex := make(map[string]int)
	for i, colName := range header {
		colIndex[strings.TrimSpace(colName)] = i
	}
	for _, req := range required {
		if _, ok := colIndex[req]; !ok {
			return nil, fmt.Errorf("required header not found: %s", req)
		}
	}
	return colIndex, nil
}

// decodeText returns the bytes as UTF-8 text. Files saved by spreadsheet
// tools on Japanese Windows installs arrive as Shift-JIS; anything that is
// not already valid UTF-8 is decoded that way.
func decodeText(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}
	decoder := japanese.ShiftJIS.NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("decode text: %w", err)
	}
	return decoded, nil
}
