package app

import (
	"math"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"room_report/internal/domain"
)

// RoomProcessor computes derived prices for a single assignment record.
type RoomProcessor struct {
	shown  domain.PriceTable
	net    domain.PriceTable
	taxes  domain.PriceTable
	guests int
	log    zerolog.Logger
}

// NewRoomProcessor builds a processor from one record. ext_data.taxes is
// a JSON string whose content is itself a JSON mapping of tax name ->
// amount; both decode stages happen here, not in the loader.
func NewRoomProcessor(rec domain.AssignmentRecord, logger zerolog.Logger) (*RoomProcessor, error) {
	var encoded string
	if err := json.Unmarshal(rec.RawTaxes, &encoded); err != nil {
		return nil, domain.DataErrorf("'ext_data.taxes' must be a JSON-encoded string")
	}
	var taxes domain.PriceTable
	if err := json.Unmarshal([]byte(encoded), &taxes); err != nil {
		return nil, domain.DataErrorf("parse 'ext_data.taxes': %v", err)
	}
	return &RoomProcessor{
		shown:  rec.ShownPrice,
		net:    rec.NetPrice,
		taxes:  taxes,
		guests: rec.NumberOfGuests,
		log:    logger,
	}, nil
}

// FindCheapestRoom scans the shown prices in document order and keeps
// the strict minimum, so ties go to the first room encountered.
func (p *RoomProcessor) FindCheapestRoom() (domain.CheapestRoom, error) {
	p.log.Info().Msg("finding the cheapest room")

	if p.shown.Len() == 0 {
		return domain.CheapestRoom{}, domain.DataErrorf("'shown_price' has no rooms")
	}
	cheapestPrice := math.Inf(1)
	cheapestRoom := ""
	for _, e := range p.shown.Entries() {
		price, err := e.Amount()
		if err != nil {
			return domain.CheapestRoom{}, domain.DataErrorf("'shown_price' for room '%s': %v", e.Name, err)
		}
		if price < cheapestPrice {
			cheapestPrice = price
			cheapestRoom = e.Name
		}
	}

	p.log.Info().Str("room_type", cheapestRoom).Float64("price", cheapestPrice).Msg("cheapest room found")
	return domain.CheapestRoom{
		RoomType:       cheapestRoom,
		Price:          domain.Round2(cheapestPrice),
		NumberOfGuests: p.guests,
	}, nil
}

// CalculateTotalPrices sums all tax amounts once and emits, for every
// room in net_price order, the original net price value alongside
// net + taxes rounded to two decimals.
func (p *RoomProcessor) CalculateTotalPrices() (domain.TotalPrices, error) {
	p.log.Info().Msg("calculating total prices for each room")

	var taxSum float64
	for _, e := range p.taxes.Entries() {
		amount, err := e.Amount()
		if err != nil {
			return domain.TotalPrices{}, domain.DataErrorf("tax '%s': %v", e.Name, err)
		}
		taxSum += amount
	}

	entries := make([]domain.TotalEntry, 0, p.net.Len())
	for _, e := range p.net.Entries() {
		net, err := e.Amount()
		if err != nil {
			return domain.TotalPrices{}, domain.DataErrorf("'net_price' for room '%s': %v", e.Name, err)
		}
		entries = append(entries, domain.TotalEntry{
			RoomType: e.Name,
			Total: domain.RoomTotal{
				NetPrice:            e.Raw,
				TotalPriceWithTaxes: domain.Round2(net + taxSum),
			},
		})
	}

	p.log.Info().Msg("total prices calculated successfully")
	return domain.TotalPrices{Entries: entries}, nil
}
