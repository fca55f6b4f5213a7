package observability

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger that writes `<timestamp> - <LEVEL> - <message>`
// lines to both stdout and an append-mode log file at logPath, plus a
// closer for the file sink.
func NewLogger(logPath string) (zerolog.Logger, func() error, error) {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return newLoggerTo(os.Stdout, f), f.Close, nil
}

func newLoggerTo(console, file io.Writer) zerolog.Logger {
	sink := zerolog.MultiLevelWriter(lineWriter(console), lineWriter(file))
	return zerolog.New(sink).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

func lineWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		FormatTimestamp: func(i any) string {
			return fmt.Sprintf("%s -", i)
		},
		FormatLevel: func(i any) string {
			return strings.ToUpper(fmt.Sprintf("%s -", i))
		},
	}
}
