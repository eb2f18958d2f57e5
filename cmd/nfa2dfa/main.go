package main

import (
	"flag"
	"log"
	"os"

	"automata/internal/app"
	"automata/internal/config"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	lambda := flag.Bool("lambda", false, "input is an LNFA, remove lambda transitions first")
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatal(err)
	}
	cfg.SetupLogging()

	in, err := config.OpenInput(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	if err := app.Determinize(in, os.Stdout, *lambda, cfg); err != nil {
		log.Fatal(err)
	}
}
