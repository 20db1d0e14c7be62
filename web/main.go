package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-fixed-landscape/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Fixed-point Landscape Web Server")
	log.Printf("Visit http://localhost:%d to watch a frame render", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
