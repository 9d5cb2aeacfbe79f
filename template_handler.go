package main

import (
	"bytes"
	"log"
	"net/http"

	"github.com/xuri/excelize/v2"
)

// TemplateHandler serves the downloadable order template workbook: the two
// named columns the upload path understands plus a couple of sample rows.
func TemplateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)
		rows := [][]interface{}{
			{"ISBN", "Qty"},
			{"9780000000001", 1},
			{"9780000000002", 5},
		}
		for i := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				log.Printf("ERROR: template cell name: %v", err)
				writeJSONError(w, "Error building template", http.StatusInternalServerError)
				return
			}
			if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
				log.Printf("ERROR: template row %d: %v", i+1, err)
				writeJSONError(w, "Error building template", http.StatusInternalServerError)
				return
			}
		}

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			log.Printf("ERROR: template write: %v", err)
			writeJSONError(w, "Error building template", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="order_template.xlsx"`)
		w.Write(buf.Bytes())
	}
}
