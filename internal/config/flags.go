package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"automata/internal/automaton"
)

// Flags are the command line settings every tool accepts.
type Flags struct {
	Path     string
	LogLevel string
	Epsilon  string
	Format   string
	fs       *flag.FlagSet
}

// RegisterFlags adds -config, -loglevel, -epsilon and -format to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "confl config file")
	fs.StringVar(&f.LogLevel, "loglevel", "", "log level [debug,info,warn,error]")
	fs.StringVar(&f.Epsilon, "epsilon", "", "lambda transition marker")
	fs.StringVar(&f.Format, "format", "", "output format [text,dot,table]")
	return f
}

// Load builds the config: defaults, then the -config file, then any flag
// given on the command line.
func (f *Flags) Load() (*Config, error) {
	c := Default()
	if f.Path != "" {
		var err error
		if c, err = LoadConfigFromFile(f.Path); err != nil {
			return nil, fmt.Errorf("config %s: %w", f.Path, err)
		}
	}
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if set["loglevel"] {
		c.LogLevel = f.LogLevel
	}
	if set["epsilon"] {
		c.Epsilon = f.Epsilon
	}
	if set["format"] {
		c.Format = f.Format
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseKind maps a -kind flag value to an automaton kind.
func ParseKind(s string) (automaton.Kind, error) {
	switch strings.ToLower(s) {
	case "dfa":
		return automaton.KindDFA, nil
	case "nfa":
		return automaton.KindNFA, nil
	case "lnfa":
		return automaton.KindLNFA, nil
	}
	return 0, fmt.Errorf("unknown automaton kind %q", s)
}

// OpenInput returns the named file, or stdin when name is empty or "-".
func OpenInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
