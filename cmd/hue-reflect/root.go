package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/ironsheep/hue-reflect/internal/config"
	"github.com/ironsheep/hue-reflect/internal/pipeline"
	"github.com/spf13/cobra"
)

const usageText = "Usage: hue-reflect [flags] <input-image> <reflect-angle>\n" +
	"Input a file path and reflect angle as command line arguments.\n" +
	"The result is written to " + pipeline.DefaultOutput + " in the working directory."

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hue-reflect [flags] <input-image> <reflect-angle>",
		Short: "Mirror the hue of every pixel in an image about an axis",
		Long: `hue-reflect converts every pixel to HSV, mirrors its hue about the given
angle (taken modulo 180) and writes the result to ` + pipeline.DefaultOutput + `.
Transparency is preserved. Flags go before the input path; everything after
it is positional, so negative angles need no escaping.

Environment variables:
  HUE_REFLECT_WORKERS=n        Number of concurrent row workers (0 = CPUs)
  HUE_REFLECT_LOG_LEVEL=debug  Enable debug logging`,
		Version:      fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runReflect,
	}

	cmd.Flags().IntP("workers", "w", 0, "Number of concurrent row workers (0 = one per CPU)")
	cmd.Flags().String("config", "", "Optional YAML config file")
	// Flags stop at the input path so a negative angle stays positional.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runReflect(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(cmd.OutOrStdout(), usageText)
		return nil
	}

	angle, err := parseAngle(args[1])
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers, _ = cmd.Flags().GetInt("workers")
		if cfg.Workers < 0 {
			return fmt.Errorf("--workers must be >= 0, got %d", cfg.Workers)
		}
	}

	// Progress goes to stderr so stdout only carries the summary.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if cfg.Debug() {
		log.Printf("hue-reflect %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	result, err := pipeline.Run(pipeline.Options{
		InputPath:  args[0],
		OutputPath: pipeline.DefaultOutput,
		Angle:      angle,
		Workers:    cfg.Workers,
		Debug:      cfg.Debug(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Reflected %dx%d image about %.2f° with %d workers → %s\n",
		result.Width, result.Height, result.Axis, result.Workers, result.OutputPath)

	return nil
}

// parseAngle parses the reflection angle argument. Non-numeric, NaN and
// infinite values are rejected.
func parseAngle(s string) (float64, error) {
	angle, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("angle must be a number: %w", err)
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0, fmt.Errorf("angle must be a finite number, got %s", s)
	}
	return angle, nil
}
