package jsonfile

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"room_report/internal/domain"
)

var requiredRecordKeys = []string{"shown_price", "net_price", "number_of_guests", "ext_data"}

// Loader reads an assignment results document from a JSON file and
// validates its shape before anything downstream touches it.
type Loader struct {
	log zerolog.Logger
}

func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{log: logger}
}

// Load reads and validates the document at path. Checks run in a fixed
// order and the first violation wins: document shape first, then per
// record (in list order) key presence before value types. Every record
// is validated even though only the first one is processed later.
func (l *Loader) Load(path string) (*domain.AssignmentDocument, error) {
	l.log.Info().Str("path", path).Msg("loading data from file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.IOErrorf("%v", err)
	}
	var top any
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, domain.DataErrorf("parse %s: %v", path, err)
	}

	doc, err := l.validate(data, top)
	if err != nil {
		l.log.Error().Err(err).Msg("data validation failed")
		return nil, err
	}
	l.log.Info().Msg("data loaded and validated successfully")
	return doc, nil
}

func (l *Loader) validate(data []byte, top any) (*domain.AssignmentDocument, error) {
	l.log.Info().Msg("validating data structure")

	obj, ok := top.(map[string]any)
	if !ok {
		return nil, domain.DataErrorf("'assignment_results' must be a list")
	}
	if _, ok := obj["assignment_results"]; !ok {
		return nil, domain.DataErrorf("'assignment_results' must be a list")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, domain.DataErrorf("'assignment_results' must be a list")
	}
	rawList := fields["assignment_results"]
	if !bytes.HasPrefix(bytes.TrimSpace(rawList), []byte("[")) {
		return nil, domain.DataErrorf("'assignment_results' must be a list")
	}
	var rawRecords []json.RawMessage
	if err := json.Unmarshal(rawList, &rawRecords); err != nil {
		return nil, domain.DataErrorf("'assignment_results' must be a list")
	}
	if len(rawRecords) == 0 {
		return nil, domain.DataErrorf("'assignment_results' is empty")
	}

	records := make([]domain.AssignmentRecord, 0, len(rawRecords))
	for _, raw := range rawRecords {
		rec, err := validateRecord(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	l.log.Info().Msg("data validation completed successfully")
	return &domain.AssignmentDocument{Results: records}, nil
}

func validateRecord(raw json.RawMessage) (domain.AssignmentRecord, error) {
	var rec domain.AssignmentRecord

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return rec, domain.DataErrorf("assignment record must be a mapping")
	}
	for _, key := range requiredRecordKeys {
		if _, ok := fields[key]; !ok {
			return rec, domain.DataErrorf("missing key '%s' in assignment results", key)
		}
	}

	if err := json.Unmarshal(fields["shown_price"], &rec.ShownPrice); err != nil || rec.ShownPrice.Len() == 0 {
		return rec, domain.DataErrorf("'shown_price' must be a non-empty mapping")
	}
	if err := json.Unmarshal(fields["net_price"], &rec.NetPrice); err != nil || rec.NetPrice.Len() == 0 {
		return rec, domain.DataErrorf("'net_price' must be a non-empty mapping")
	}
	guests, err := strconv.ParseInt(strings.TrimSpace(string(fields["number_of_guests"])), 10, 64)
	if err != nil {
		return rec, domain.DataErrorf("'number_of_guests' must be an integer")
	}
	rec.NumberOfGuests = int(guests)

	var ext map[string]json.RawMessage
	if err := json.Unmarshal(fields["ext_data"], &ext); err != nil {
		return rec, domain.DataErrorf("'ext_data' must contain a 'taxes' mapping")
	}
	taxes, ok := ext["taxes"]
	if !ok {
		return rec, domain.DataErrorf("'ext_data' must contain a 'taxes' mapping")
	}
	rec.RawTaxes = []byte(taxes)

	return rec, nil
}
