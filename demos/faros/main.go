// faros runs "Faros de Sofía" in a desktop window.
//
//	go run ./demos/faros -config faros.json
//	go run ./demos/faros -simple
//	go run ./demos/faros -script testdata/tour.json
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/faros"
)

func main() {
	configPath := flag.String("config", "", "JSON config file (defaults are used when empty)")
	script := flag.String("script", "", "JSON test script to replay")
	simple := flag.Bool("simple", false, "run the minimal experience")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := faros.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *script != "" {
		cfg.TestScript = *script
	}
	if *simple {
		cfg.Features = faros.SimpleFeatures()
	}
	if *debug {
		cfg.Debug = true
	}

	if err := faros.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
