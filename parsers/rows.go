package parsers

// Row is one uploaded spreadsheet row reduced to the two cells the order
// reconciler reads. The two shapes cover the two upload formats in the
// wild: header-less two-column files and files with named ISBN/Qty columns.
type Row interface {
	ISBNCell() string
	QtyCell() string
}

// PositionalRow addresses cells by column position.
type PositionalRow struct {
	Cells []string
}

func (r PositionalRow) ISBNCell() string { return cellAt(r.Cells, 0) }
func (r PositionalRow) QtyCell() string  { return cellAt(r.Cells, 1) }

// NamedRow addresses cells by their spreadsheet header name.
type NamedRow struct {
	Fields map[string]string
}

func (r NamedRow) ISBNCell() string { return r.Fields["ISBN"] }
func (r NamedRow) QtyCell() string  { return r.Fields["Qty"] }

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// RowsFromCells adapts raw worksheet cells to rows. When the first row
// carries the named ISBN/Qty headers it is consumed here and the remaining
// rows are addressed by name; otherwise every row is positional and any
// leading header row is left for the reconciler's heuristic to discard.
func RowsFromCells(raw [][]string) []Row {
	if len(raw) > 0 {
		if colIndex, err := getColIndex(raw[0], []string{"ISBN", "Qty"}); err == nil {
			rows := make([]Row, 0, len(raw)-1)
			for _, rec := range raw[1:] {
				fields := make(map[string]string, len(colIndex))
				for name, idx := range colIndex {
					fields[name] = cellAt(rec, idx)
				}
				rows = append(rows, NamedRow{Fields: fields})
			}
			return rows
		}
	}
	rows := make([]Row, 0, len(raw))
	for _, rec := range raw {
		rows = append(rows, PositionalRow{Cells: rec})
	}
	return rows
}
