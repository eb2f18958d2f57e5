package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"automata/internal/app"
	"automata/internal/config"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	kindFlag := flag.String("kind", "lnfa", "automaton kind [dfa,nfa,lnfa]")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-kind k] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.SetupLogging()

	kind, err := config.ParseKind(*kindFlag)
	if err != nil {
		log.Fatal(err)
	}

	in, err := config.OpenInput(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	if err := app.VerifyWords(in, os.Stdout, kind, cfg); err != nil {
		log.Fatal(err)
	}
}
