// cmd/zonetransfer/main.go
package main

import (
	"os"

	"intelprobe/internal/app"

	// Import module for auto-registration via init()
	_ "intelprobe/internal/modules/zonetransfer"
)

// Rellenable con -ldflags en build
var version = "dev"

func main() {
	os.Exit(app.Main("zone_transfer", version))
}
