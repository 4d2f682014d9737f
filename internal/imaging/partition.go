package imaging

import "runtime"

// maxWorkersPerProc bounds the worker count relative to the processor count.
const maxWorkersPerProc = 4

// Band is a contiguous range of image rows.
//
// Start is inclusive, End is exclusive. An empty band has Start == End.
type Band struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of rows in the band.
func (b Band) Len() int {
	return b.End - b.Start
}

// Plan describes how rows are split between concurrent workers and the
// synchronous pass run by the caller.
type Plan struct {
	// Bands holds one band per worker, in row order, each of equal height.
	Bands []Band

	// Remainder holds the trailing rows that do not fill a whole band. The
	// coordinating goroutine processes them itself.
	Remainder Band
}

// Goroutines returns how many goroutines actually transform rows under the
// plan: one per band, or 1 when everything runs in the synchronous pass.
func (p Plan) Goroutines() int {
	if len(p.Bands) == 0 {
		return 1
	}
	return len(p.Bands)
}

// Partition divides height rows between workers.
//
// Each of the workers receives a band of height/workers rows, so
// (height/workers)*workers rows are dispatched concurrently and the last
// height%workers rows form the remainder. When workers <= 1, height <= 0 or
// height < workers there are no bands and the remainder spans every row,
// which results in a single synchronous pass.
//
// Bands never overlap and, together with the remainder, cover [0,height)
// exactly once.
func Partition(height, workers int) Plan {
	if height <= 0 {
		return Plan{}
	}
	if workers <= 1 || height < workers {
		return Plan{Remainder: Band{Start: 0, End: height}}
	}

	rowsPerWorker := height / workers
	bands := make([]Band, workers)
	for i := range bands {
		bands[i] = Band{Start: i * rowsPerWorker, End: (i + 1) * rowsPerWorker}
	}

	return Plan{
		Bands:     bands,
		Remainder: Band{Start: workers * rowsPerWorker, End: height},
	}
}

// EffectiveWorkers resolves a configured worker count.
// Zero or negative means one worker per processor (GOMAXPROCS). Larger values
// are capped at a small multiple of the processor count.
func EffectiveWorkers(n int) int {
	procs := runtime.GOMAXPROCS(0)
	if n <= 0 {
		return procs
	}
	if limit := procs * maxWorkersPerProc; n > limit {
		return limit
	}
	return n
}
