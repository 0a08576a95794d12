package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/AjayAntoIsDev/SafeRoute/internal/assessment"
	"github.com/AjayAntoIsDev/SafeRoute/internal/config"
	"github.com/AjayAntoIsDev/SafeRoute/internal/observability"
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// CLI is the command line for a single assessment
type CLI struct {
	Latitude  float64 `help:"Latitude in decimal degrees (6 to 37)." required:""`
	Longitude float64 `help:"Longitude in decimal degrees (68 to 97)." required:""`
	Pretty    bool    `help:"Indent the JSON output."`
}

// Assessor runs a disaster risk assessment for a coordinate
type Assessor interface {
	Assess(ctx context.Context, coords types.Coords) (*types.Prediction, error)
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("assess"),
		kong.Description("Assess disaster risk for a location in India and print the prediction as JSON."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kctx.FatalIfErrorf(cli.Run(ctx, os.Stdout))
}

// Run loads configuration, builds the assessment service and prints one prediction
func (c *CLI) Run(ctx context.Context, out io.Writer) error {
	// A missing .env file is fine; the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := cfg.NewLoggerTo(os.Stderr)

	svc, err := assessment.NewServiceFromConfig(cfg, observability.NopRecorder{}, logger)
	if err != nil {
		return err
	}

	return c.assess(ctx, svc, out)
}

func (c *CLI) assess(ctx context.Context, svc Assessor, out io.Writer) error {
	prediction, err := svc.Assess(ctx, types.NewCoords(c.Latitude, c.Longitude))
	if err != nil {
		return fmt.Errorf("assessment failed: %w", err)
	}

	enc := json.NewEncoder(out)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(prediction); err != nil {
		return fmt.Errorf("failed to write prediction: %w", err)
	}
	return nil
}
