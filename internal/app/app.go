// Package app holds the bodies of the command line tools so they can run
// against any reader and writer.
package app

import (
	"bufio"
	"fmt"
	"io"

	u "github.com/araddon/gou"

	"automata/internal/automaton"
	"automata/internal/config"
	"automata/internal/textfmt"
)

func decoder(r io.Reader, cfg *config.Config) (*textfmt.Decoder, error) {
	dec, err := textfmt.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec.Epsilon = cfg.EpsilonRune()
	return dec, nil
}

func printer(cfg *config.Config) *textfmt.Printer {
	p := textfmt.NewPrinter()
	p.Epsilon = cfg.EpsilonRune()
	return p
}

// VerifyWords reads an automaton of the given kind followed by a word batch
// and writes one result line per word.
func VerifyWords(r io.Reader, w io.Writer, kind automaton.Kind, cfg *config.Config) error {
	dec, err := decoder(r, cfg)
	if err != nil {
		return err
	}
	a, err := dec.Decode(kind)
	if err != nil {
		return fmt.Errorf("reading %s: %w", kind, err)
	}
	words, err := dec.Words()
	if err != nil {
		return fmt.Errorf("reading words: %w", err)
	}

	bw := bufio.NewWriter(w)
	accepted := 0
	for _, word := range words {
		path, ok := a.VerifyWord(word)
		if ok {
			accepted++
		}
		fmt.Fprintln(bw, textfmt.FormatResult(word, path, ok))
	}
	u.Infof("verified %d words, %d accepted", len(words), accepted)
	return bw.Flush()
}

// Determinize reads an NFA, or an LNFA when lambda is set, and writes it
// followed by the equivalent DFA.
func Determinize(r io.Reader, w io.Writer, lambda bool, cfg *config.Config) error {
	dec, err := decoder(r, cfg)
	if err != nil {
		return err
	}

	var src automaton.Automaton
	var n *automaton.NFA
	if lambda {
		l, err := dec.DecodeLNFA()
		if err != nil {
			return fmt.Errorf("reading LNFA: %w", err)
		}
		src, n = l, l.RemoveEpsilon()
	} else {
		if n, err = dec.DecodeNFA(); err != nil {
			return fmt.Errorf("reading NFA: %w", err)
		}
		src = n
	}

	d := n.ToDFA()
	u.Infof("subset construction: %d states -> %d states", len(n.States()), len(d.States()))
	return Render(w, cfg, src, d)
}

// Minimize reads a DFA and writes it followed by its minimal form.
func Minimize(r io.Reader, w io.Writer, cfg *config.Config) error {
	dec, err := decoder(r, cfg)
	if err != nil {
		return err
	}
	d, err := dec.DecodeDFA()
	if err != nil {
		return fmt.Errorf("reading DFA: %w", err)
	}
	if unreachable := d.UnreachableStates(); len(unreachable) > 0 {
		u.Debugf("dropping unreachable states %v", unreachable)
	}
	m := d.Minimize()
	u.Infof("minimize: %d states -> %d states", len(d.States()), len(m.States()))

	if cfg.Format != config.FormatText {
		return Render(w, cfg, m)
	}
	if _, err := io.WriteString(w, "Initial "); err != nil {
		return err
	}
	if err := Render(w, cfg, d); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\nMinimized "); err != nil {
		return err
	}
	return Render(w, cfg, m)
}

// Render writes each automaton in the configured format, separated by a
// blank line.
func Render(w io.Writer, cfg *config.Config, automata ...automaton.Automaton) error {
	p := printer(cfg)
	for i, a := range automata {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		var err error
		switch cfg.Format {
		case config.FormatDOT:
			err = textfmt.ExportDOT(w, a)
		case config.FormatTable:
			if _, err = fmt.Fprintln(w, p.Header(a)); err == nil {
				err = p.WriteTable(w, a)
			}
		default:
			err = p.Print(w, a)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Visualize reads an automaton of the given kind, either in the count
// format or, when listing is set, in the printed listing format, and renders
// it in the configured format.
func Visualize(r io.Reader, w io.Writer, kind automaton.Kind, listing bool, cfg *config.Config) error {
	var a automaton.Automaton
	if listing {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		l, err := textfmt.ParseListing("listing", string(data))
		if err != nil {
			return err
		}
		if a, err = l.Build(cfg.EpsilonRune()); err != nil {
			return err
		}
	} else {
		dec, err := decoder(r, cfg)
		if err != nil {
			return err
		}
		if a, err = dec.Decode(kind); err != nil {
			return fmt.Errorf("reading %s: %w", kind, err)
		}
	}
	return Render(w, cfg, a)
}
