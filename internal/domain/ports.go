package domain

// DocumentLoader reads and validates an assignment results document.
type DocumentLoader interface {
	Load(path string) (*AssignmentDocument, error)
}

// OutputWriter persists the derived summary.
type OutputWriter interface {
	Save(path string, cheapest CheapestRoom, totals TotalPrices) error
}
