package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AssignmentDocument is a validated input document.
type AssignmentDocument struct {
	Results []AssignmentRecord
}

// AssignmentRecord is one entry of assignment_results after validation.
// RawTaxes keeps the ext_data.taxes value exactly as it appeared in the
// document: a JSON string whose content is itself JSON. The second
// decode happens when a processor is built from the record.
type AssignmentRecord struct {
	ShownPrice     PriceTable
	NetPrice       PriceTable
	NumberOfGuests int
	RawTaxes       json.RawMessage
}

// PriceEntry is one room type (or tax name) and its still-encoded value.
type PriceEntry struct {
	Name string
	Raw  json.RawMessage
}

// PriceTable is a JSON object of name -> value that keeps the document's
// key order. Order is load-bearing: cheapest-room ties go to the first
// room in document order, and the output lists rooms in that order too.
type PriceTable struct {
	entries []PriceEntry
}

func (t PriceTable) Len() int { return len(t.entries) }

// Entries returns the table's entries in document order.
func (t PriceTable) Entries() []PriceEntry { return t.entries }

// UnmarshalJSON walks the object token by token so the key order
// survives. A duplicate key keeps its first position and takes the last
// value, matching how plain JSON object decoding behaves elsewhere.
func (t *PriceTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("not a JSON object")
	}
	var entries []PriceEntry
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("object key is not a string")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if i, seen := index[key]; seen {
			entries[i].Raw = raw
			continue
		}
		index[key] = len(entries)
		entries = append(entries, PriceEntry{Name: key, Raw: raw})
	}
	t.entries = entries
	return nil
}
