// cmd/domainintel/main.go
package main

import (
	"os"

	"intelprobe/internal/app"

	// Import module for auto-registration via init()
	_ "intelprobe/internal/modules/domainintel"
)

// Rellenable con -ldflags en build
var version = "dev"

func main() {
	os.Exit(app.Main("domain_intel", version))
}
