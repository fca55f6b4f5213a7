package jsonfile

import (
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"room_report/internal/domain"
)

// Writer persists the computed summary as an indented JSON document.
type Writer struct {
	log zerolog.Logger
}

func NewWriter(logger zerolog.Logger) *Writer {
	return &Writer{log: logger}
}

// Save writes {cheapest_room, total_prices} to path with 4-space
// indentation, overwriting any existing file. The write is not atomic;
// a crash mid-write may leave a truncated file.
func (w *Writer) Save(path string, cheapest domain.CheapestRoom, totals domain.TotalPrices) error {
	out := domain.SummaryDocument{CheapestRoom: cheapest, TotalPrices: totals}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return domain.DataErrorf("encode output: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.IOErrorf("%v", err)
	}

	w.log.Info().Str("path", path).Msg("output has been saved")
	return nil
}
