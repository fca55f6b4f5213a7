package app

import (
	"errors"

	"github.com/rs/zerolog"

	"room_report/internal/domain"
)

// Exit codes reported by the summarizer binary.
const (
	ExitSuccess           = 0
	ExitDataError         = 1
	ExitIOError           = 2
	ExitInvalidInvocation = 3
	ExitInternalError     = 4
)

// Pipeline runs the load -> process -> save flow. All stages fail fast;
// the first error propagates unchanged and nothing is written after it.
type Pipeline struct {
	loader domain.DocumentLoader
	writer domain.OutputWriter
	log    zerolog.Logger
}

func NewPipeline(loader domain.DocumentLoader, writer domain.OutputWriter, logger zerolog.Logger) *Pipeline {
	return &Pipeline{loader: loader, writer: writer, log: logger}
}

// Run loads the document at inputPath, derives the summary from its
// first assignment record, and writes it to outputPath. Later records
// are validated by the load stage but never processed.
func (p *Pipeline) Run(inputPath, outputPath string) error {
	doc, err := p.loader.Load(inputPath)
	if err != nil {
		return err
	}

	proc, err := NewRoomProcessor(doc.Results[0], p.log)
	if err != nil {
		return err
	}
	cheapest, err := proc.FindCheapestRoom()
	if err != nil {
		return err
	}
	totals, err := proc.CalculateTotalPrices()
	if err != nil {
		return err
	}

	return p.writer.Save(outputPath, cheapest, totals)
}

// ExitCode maps a pipeline error to the binary's exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, domain.ErrData):
		return ExitDataError
	case errors.Is(err, domain.ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
