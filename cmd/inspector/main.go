package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/acala-trade/acala/internal/config"
	"github.com/acala-trade/acala/internal/model"
	"github.com/joho/godotenv"
)

// Loads the settings aggregate from the current environment and prints the
// redacted view, so operators can check what a deployment would run with.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("settings are invalid: %v", err)
	}

	out, err := json.MarshalIndent(model.SettingsFromConfig(cfg), "", "  ")
	if err != nil {
		log.Fatalf("failed to render settings: %v", err)
	}

	fmt.Fprintln(os.Stdout, string(out))
}
