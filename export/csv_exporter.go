package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"podorder/model"
)

// RenderHeaderRow resolves the layout's ordered token list into the HDR
// row. Tokens with fixed meanings resolve first; anything else is looked
// up in the layout's address map and falls back to empty.
func RenderHeaderRow(layout model.CustomerLayout, orderRef string, now time.Time) []string {
	row := make([]string, 0, len(layout.CSVStructure))
	for _, token := range layout.CSVStructure {
		switch token {
		case "HDR":
			row = append(row, "HDR")
		case "orderNumber":
			row = append(row, orderRef)
		case "date":
			row = append(row, now.Format("20060102"))
		case "code":
			row = append(row, layout.HeaderCode)
		case "type":
			row = append(row, layout.Type)
		case "companyName":
			row = append(row, layout.Name)
		case "phone":
			row = append(row, layout.Phone)
		default:
			row = append(row, layout.Address[token])
		}
	}
	return row
}

// RenderDetailRow emits the DTL row for one order line. The row is as wide
// as the header layout and only four fixed positions are populated;
// downstream consumers read fixed column offsets, not headers.
func RenderDetailRow(layout model.CustomerLayout, line model.OrderLine) []string {
	row := make([]string, len(layout.CSVStructure))
	set := func(i int, v string) {
		if i < len(row) {
			row[i] = v
		}
	}
	set(0, "DTL")
	set(2, line.LineNumber)
	set(3, line.ISBN)
	set(4, strconv.Itoa(line.Quantity))
	return row
}

// BuildCSV serializes one HDR row followed by one DTL row per order line.
func BuildCSV(batch model.OrderBatch, layout model.CustomerLayout, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	wr := csv.NewWriter(&buf)
	if err := wr.Write(RenderHeaderRow(layout, batch.OrderRef, now)); err != nil {
		return nil, err
	}
	for _, line := range batch.Lines {
		if err := wr.Write(RenderDetailRow(layout, line)); err != nil {
			return nil, err
		}
	}
	wr.Flush()
	if err := wr.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSVFilename stamps the download name, zero-padded throughout.
func CSVFilename(now time.Time) string {
	return "pod_order_" + now.Format("2006_01_02_15_04_05") + ".csv"
}

// PDFFilename mirrors CSVFilename for the PDF sink.
func PDFFilename(now time.Time) string {
	return "pod_order_" + now.Format("2006_01_02_15_04_05") + ".pdf"
}
