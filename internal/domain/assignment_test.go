package domain_test

import (
	"encoding/json"
	"testing"

	"room_report/internal/domain"
)

func decodeTable(t *testing.T, src string) domain.PriceTable {
	t.Helper()
	var pt domain.PriceTable
	if err := json.Unmarshal([]byte(src), &pt); err != nil {
		t.Fatalf("decode %s: %v", src, err)
	}
	return pt
}

func TestPriceTableKeepsDocumentOrder(t *testing.T) {
	pt := decodeTable(t, `{"Suite":"300.00","Standard":"100.00","Deluxe":"150.00"}`)
	if pt.Len() != 3 {
		t.Fatalf("len: %d", pt.Len())
	}
	want := []string{"Suite", "Standard", "Deluxe"}
	for i, e := range pt.Entries() {
		if e.Name != want[i] {
			t.Fatalf("entry %d: got %s, want %s", i, e.Name, want[i])
		}
	}
}

func TestPriceTableDuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	pt := decodeTable(t, `{"Standard":"100.00","Deluxe":"150.00","Standard":"80.00"}`)
	if pt.Len() != 2 {
		t.Fatalf("len: %d", pt.Len())
	}
	entries := pt.Entries()
	if entries[0].Name != "Standard" || string(entries[0].Raw) != `"80.00"` {
		t.Fatalf("first entry: %s=%s", entries[0].Name, entries[0].Raw)
	}
	if entries[1].Name != "Deluxe" {
		t.Fatalf("second entry: %s", entries[1].Name)
	}
}

func TestPriceTableValuesStayVerbatim(t *testing.T) {
	pt := decodeTable(t, `{"Standard":90.50,"Deluxe":"130.00","Suite":{"amount":3}}`)
	entries := pt.Entries()
	if string(entries[0].Raw) != `90.50` {
		t.Fatalf("number value: %s", entries[0].Raw)
	}
	if string(entries[1].Raw) != `"130.00"` {
		t.Fatalf("string value: %s", entries[1].Raw)
	}
	if string(entries[2].Raw) != `{"amount":3}` {
		t.Fatalf("object value: %s", entries[2].Raw)
	}
}

func TestPriceTableRejectsNonObjects(t *testing.T) {
	for _, src := range []string{`[1,2]`, `"Standard"`, `42`, `null`, `true`} {
		var pt domain.PriceTable
		if err := json.Unmarshal([]byte(src), &pt); err == nil {
			t.Fatalf("decode %s: expected error", src)
		}
	}
}

func TestPriceTableEmptyObject(t *testing.T) {
	pt := decodeTable(t, `{}`)
	if pt.Len() != 0 {
		t.Fatalf("len: %d", pt.Len())
	}
}
