package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount parses the entry's value as a price: a JSON number, or a JSON
// string holding a number (surrounding whitespace tolerated).
func (e PriceEntry) Amount() (float64, error) {
	s := strings.TrimSpace(string(e.Raw))
	if strings.HasPrefix(s, `"`) {
		var inner string
		if err := json.Unmarshal(e.Raw, &inner); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(inner)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return f, nil
}

// Round2 rounds v to two decimal places, half to even.
func Round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}
