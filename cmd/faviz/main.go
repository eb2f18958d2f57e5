package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"

	u "github.com/araddon/gou"

	"automata/internal/app"
	"automata/internal/config"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	kindFlag := flag.String("kind", "dfa", "automaton kind [dfa,nfa,lnfa]")
	listing := flag.Bool("listing", false, "input is a printed listing instead of the count format")
	outFile := flag.String("o", "-", "output file")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.SetupLogging()
	if *pngFlag {
		cfg.Format = config.FormatDOT
	}

	kind, err := config.ParseKind(*kindFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: faviz [-kind dfa|nfa|lnfa] [-listing] [-format text|dot|table] [-o file] [-png] [file]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	in, err := config.OpenInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open input: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	var buf bytes.Buffer
	if err := app.Visualize(in, &buf, kind, *listing, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *pngFlag {
		if *outFile == "-" {
			*outFile = "graph.png"
		}
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "dot failed: %v\n", err)
			os.Exit(1)
		}
		u.Infof("PNG written to %s", *outFile)
		return
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	_, _ = io.Copy(w, &buf)
	if *outFile != "-" {
		u.Infof("%s written to %s", cfg.Format, *outFile)
	}
}
