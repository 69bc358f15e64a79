package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/okarlsson/go-sphere-tracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the preview server")
	scenePath := flag.String("scene", "", "Path to the JSON scene description (or set SCENE_FILE)")
	flag.Parse()

	path := *scenePath
	if path == "" {
		path = os.Getenv("SCENE_FILE")
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "No scene description given: use -scene or SCENE_FILE")
		os.Exit(1)
	}

	srv := server.NewServer(*port, path)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
