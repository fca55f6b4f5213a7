package domain

import (
	"bytes"
	"encoding/json"
)

// CheapestRoom is the room with the lowest shown price of a record.
type CheapestRoom struct {
	RoomType       string  `json:"room_type"`
	Price          float64 `json:"price"`
	NumberOfGuests int     `json:"number_of_guests"`
}

// RoomTotal is the tax-inclusive total for one room type. NetPrice
// carries the document's original value untouched, so a string price
// stays a string in the output.
type RoomTotal struct {
	NetPrice            json.RawMessage `json:"net_price"`
	TotalPriceWithTaxes float64         `json:"total_price_with_taxes"`
}

// TotalEntry pairs a room type with its total.
type TotalEntry struct {
	RoomType string
	Total    RoomTotal
}

// TotalPrices maps room type -> RoomTotal, in net price document order.
type TotalPrices struct {
	Entries []TotalEntry
}

// MarshalJSON writes the entries as a JSON object in entry order.
func (p TotalPrices) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range p.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.RoomType)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Total)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SummaryDocument is the document written to the output file.
type SummaryDocument struct {
	CheapestRoom CheapestRoom `json:"cheapest_room"`
	TotalPrices  TotalPrices  `json:"total_prices"`
}
