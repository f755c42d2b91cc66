package main

import (
	"flag"
	"fmt"
	"localjournal/internal/di"
	"localjournal/internal/structures"
	"os"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the YAML config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "also log to stdout")
	flag.Parse()

	app, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to start: %s\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if err = app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		app.Close()
		os.Exit(1)
	}
}
