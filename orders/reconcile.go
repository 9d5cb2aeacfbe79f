package orders

import (
	"fmt"
	"strconv"
	"strings"

	"podorder/catalog"
	"podorder/isbn"
	"podorder/model"
	"podorder/parsers"
)

// LineNumber renders a 1-based position as the padded line number.
func LineNumber(pos int) string {
	return fmt.Sprintf("%03d", pos)
}

// Reconcile turns raw uploaded rows into order lines against the catalog.
//
// A leading positional header row (non-numeric first cell) is discarded.
// Every other row produces exactly one line, in input order; malformed
// rows surface as unavailable lines with quantity 0 rather than being
// dropped. An unloaded catalog index just makes every line "Not Found".
func Reconcile(rows []parsers.Row, index *catalog.Index, orderRef string) []model.OrderLine {
	if len(rows) > 0 {
		if p, ok := rows[0].(parsers.PositionalRow); ok && isHeaderCell(p.ISBNCell()) {
			rows = rows[1:]
		}
	}

	lines := make([]model.OrderLine, 0, len(rows))
	for i, row := range rows {
		code := isbn.Normalize(row.ISBNCell())

		line := model.OrderLine{
			LineNumber:  LineNumber(i + 1),
			OrderRef:    orderRef,
			ISBN:        code,
			Description: model.NotFoundDescription,
			Quantity:    parseQuantity(row.QtyCell()),
		}
		if entry, ok := index.Lookup(code); ok {
			line.Description = entry.Description
			line.Available = true
			line.SetupDate = entry.SetupDate
		}
		lines = append(lines, line)
	}
	return lines
}

// isHeaderCell reports whether a first-row cell looks like a column title
// rather than an ISBN. Deliberately a heuristic, not a schema check.
func isHeaderCell(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err != nil
}

// parseQuantity reads a quantity cell as a non-negative integer.
// Spreadsheets hand back "3.0" for integer cells, so a float truncation
// fallback is applied; anything else normalizes to 0.
func parseQuantity(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
		return int(f)
	}
	return 0
}
