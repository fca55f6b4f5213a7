package shared

import (
	"flag"
	"fmt"
	"io"
)

// Default paths, kept for compatibility with runs that pass no flags.
const (
	DefaultInputPath  = "data.json"
	DefaultOutputPath = "output.json"
	DefaultLogPath    = "app.log"
)

type Config struct {
	InputPath  string
	OutputPath string
	LogPath    string
}

// Parse reads command-line arguments into a Config. Parse errors are
// returned, not printed; positional arguments are rejected.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("summarizer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfg Config
	fs.StringVar(&cfg.InputPath, "input", DefaultInputPath, "path of the assignment results document")
	fs.StringVar(&cfg.OutputPath, "output", DefaultOutputPath, "path the summary is written to")
	fs.StringVar(&cfg.LogPath, "log", DefaultLogPath, "path of the append-mode run log")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() != 0 {
		return Config{}, fmt.Errorf("unexpected positional arguments: %q", fs.Args())
	}
	checks := []struct{ name, value string }{
		{"input", cfg.InputPath},
		{"output", cfg.OutputPath},
		{"log", cfg.LogPath},
	}
	for _, c := range checks {
		if c.value == "" {
			return Config{}, fmt.Errorf("flag -%s must not be empty", c.name)
		}
	}
	return cfg, nil
}
