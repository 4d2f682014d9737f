package pipeline

import (
	"fmt"
	"log"
	"time"

	"github.com/ironsheep/hue-reflect/internal/imaging"
)

// DefaultOutput is the file written when Options.OutputPath is empty.
const DefaultOutput = "output.png"

// Options controls one hue reflection run.
type Options struct {
	InputPath  string  // image to read
	OutputPath string  // image to write; DefaultOutput when empty
	Angle      float64 // reflection angle in degrees, any range
	Workers    int     // concurrent workers; 0 = one per processor
	Debug      bool    // log partition details
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Width       int
	Height      int
	Axis        float64 // normalized reflection axis actually used
	Workers     int     // row bands run concurrently; 1 for a synchronous pass
	OutputPath  string
	LoadTime    time.Duration
	ProcessTime time.Duration
}

// Run executes the full pipeline: load → partition → execute → join → save.
//
// The output is only written once every worker has finished successfully; on
// any failure nothing is saved.
func Run(opts Options) (*Result, error) {
	start := time.Now()
	out := opts.OutputPath
	if out == "" {
		out = DefaultOutput
	}

	// 1. Decode
	src, err := imaging.LoadNRGBA(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(start)
	log.Printf("Image loaded in %dms", loadTime.Milliseconds())

	// 2. Partition and execute
	axis := imaging.NormalizeAxis(opts.Angle)
	workers := imaging.EffectiveWorkers(opts.Workers)
	plan := imaging.Partition(src.Rect.Dy(), workers)
	if opts.Debug {
		log.Printf("%dx%d image, axis %.2f, %d bands, remainder rows [%d,%d)",
			src.Rect.Dx(), src.Rect.Dy(), axis, len(plan.Bands), plan.Remainder.Start, plan.Remainder.End)
	}

	log.Printf("Processing...")
	exec := imaging.Executor{Workers: workers}
	result, err := exec.Apply(src, axis)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	processTime := time.Since(start) - loadTime

	// 3. Encode
	if err := imaging.Save(out, result); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	log.Printf("Done in %dms", time.Since(start).Milliseconds())

	return &Result{
		Width:       result.Rect.Dx(),
		Height:      result.Rect.Dy(),
		Axis:        axis,
		Workers:     plan.Goroutines(),
		OutputPath:  out,
		LoadTime:    loadTime,
		ProcessTime: processTime,
	}, nil
}
