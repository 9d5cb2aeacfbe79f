package layouts

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const customersDoc = `{
  "wholesale": {
    "csvStructure": ["HDR", "orderNumber", "date", "code", "line1", "city", "postcode"],
    "name": "Wholesale Books Ltd",
    "phone": "0123 456 789",
    "headerCode": "WBL01",
    "address": {"line1": "1 Depot Road", "city": "Leeds", "postcode": "LS1 1AA"}
  },
  "retail": {
    "csvStructure": ["HDR", "orderNumber", "date", "type", "companyName", "phone"],
    "name": "Retail Direct",
    "phone": "0987 654 321",
    "type": "R"
  }
}`

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customers.json")
	if err := os.WriteFile(path, []byte(customersDoc), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileAndLookup(t *testing.T) {
	rg := NewRegistry()
	if err := rg.LoadFile(writeDoc(t)); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	layout, ok := rg.Lookup("wholesale")
	if !ok {
		t.Fatalf("expected wholesale layout")
	}
	if layout.Name != "Wholesale Books Ltd" || layout.HeaderCode != "WBL01" {
		t.Errorf("unexpected layout: %+v", layout)
	}
	if layout.Address["city"] != "Leeds" {
		t.Errorf("address sub-fields not loaded: %+v", layout.Address)
	}
	if len(layout.CSVStructure) != 7 {
		t.Errorf("csvStructure length = %d, want 7", len(layout.CSVStructure))
	}

	if _, ok := rg.Lookup("unknown"); ok {
		t.Errorf("expected miss for unknown customer type")
	}
}

func TestKeysSorted(t *testing.T) {
	rg := NewRegistry()
	if err := rg.LoadFile(writeDoc(t)); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := rg.Keys(); !reflect.DeepEqual(got, []string{"retail", "wholesale"}) {
		t.Errorf("Keys() = %v", got)
	}
}

func TestEmptyRegistry(t *testing.T) {
	rg := NewRegistry()
	if _, ok := rg.Lookup("wholesale"); ok {
		t.Errorf("empty registry must miss")
	}
	if len(rg.Keys()) != 0 {
		t.Errorf("empty registry has keys")
	}
}
