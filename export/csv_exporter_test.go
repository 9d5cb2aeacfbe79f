package export

import (
	"strings"
	"testing"
	"time"

	"podorder/model"
)

var exportTime = time.Date(2026, 8, 29, 9, 5, 3, 0, time.UTC)

func wholesaleLayout() model.CustomerLayout {
	return model.CustomerLayout{
		CSVStructure: []string{"HDR", "orderNumber", "date", "code", "line1", "city"},
		Name:         "Wholesale Books Ltd",
		Phone:        "0123 456 789",
		HeaderCode:   "WBL01",
		Address:      map[string]string{"line1": "1 Depot Road", "city": "Leeds"},
	}
}

func TestRenderHeaderRow(t *testing.T) {
	got := RenderHeaderRow(wholesaleLayout(), "REF1", exportTime)
	want := []string{"HDR", "REF1", "20260829", "WBL01", "1 Depot Road", "Leeds"}
	if len(got) != len(want) {
		t.Fatalf("header row = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderHeaderRowAbsentValues(t *testing.T) {
	layout := model.CustomerLayout{
		CSVStructure: []string{"HDR", "code", "type", "companyName", "phone", "postcode"},
		Name:         "Retail Direct",
		Phone:        "0987",
	}
	got := RenderHeaderRow(layout, "REF1", exportTime)
	want := []string{"HDR", "", "", "Retail Direct", "0987", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("header[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderDetailRowShape(t *testing.T) {
	line := model.OrderLine{LineNumber: "001", ISBN: "9780000000001", Quantity: 3}
	row := RenderDetailRow(wholesaleLayout(), line)

	if len(row) != 6 {
		t.Fatalf("detail row width = %d, want 6", len(row))
	}
	want := []string{"DTL", "", "001", "9780000000001", "3", ""}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("detail[%d] = %q, want %q", i, row[i], want[i])
		}
	}
}

func TestRenderDetailRowNarrowLayout(t *testing.T) {
	layout := model.CustomerLayout{CSVStructure: []string{"HDR", "orderNumber", "date"}}
	line := model.OrderLine{LineNumber: "001", ISBN: "9780000000001", Quantity: 3}
	row := RenderDetailRow(layout, line)
	if len(row) != 3 {
		t.Fatalf("detail row width = %d, want 3", len(row))
	}
	if row[0] != "DTL" || row[2] != "001" {
		t.Errorf("narrow detail row = %v", row)
	}
}

func TestBuildCSV(t *testing.T) {
	batch := model.OrderBatch{
		OrderRef: "REF1",
		Lines: []model.OrderLine{
			{LineNumber: "001", ISBN: "9780000000001", Quantity: 3},
			{LineNumber: "002", ISBN: "9780000000002", Quantity: 1},
		},
	}
	data, err := BuildCSV(batch, wholesaleLayout(), exportTime)
	if err != nil {
		t.Fatalf("BuildCSV: %v", err)
	}

	want := "HDR,REF1,20260829,WBL01,1 Depot Road,Leeds\n" +
		"DTL,,001,9780000000001,3,\n" +
		"DTL,,002,9780000000002,1,\n"
	if string(data) != want {
		t.Errorf("BuildCSV =\n%q\nwant\n%q", data, want)
	}
}

func TestBuildCSVQuotesDelimiters(t *testing.T) {
	layout := model.CustomerLayout{
		CSVStructure: []string{"HDR", "companyName"},
		Name:         `Books, "Rare" & Old`,
	}
	data, err := BuildCSV(model.OrderBatch{OrderRef: "R"}, layout, exportTime)
	if err != nil {
		t.Fatalf("BuildCSV: %v", err)
	}
	if !strings.Contains(string(data), `"Books, ""Rare"" & Old"`) {
		t.Errorf("field not quoted per CSV escaping rules: %q", data)
	}
}

func TestFilenames(t *testing.T) {
	if got := CSVFilename(exportTime); got != "pod_order_2026_08_29_09_05_03.csv" {
		t.Errorf("CSVFilename = %q", got)
	}
	if got := PDFFilename(exportTime); got != "pod_order_2026_08_29_09_05_03.pdf" {
		t.Errorf("PDFFilename = %q", got)
	}
}
