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

	if err := app.Minimize(in, os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}
