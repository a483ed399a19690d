package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/desertthunder/spotypod/internal/shared"
	"golang.org/x/time/rate"
)

// BatchOpts contains configuration for batch playlist processing.
type BatchOpts struct {
	ProcessOpts
	NumWorkers int     // Concurrent workers (default: 2)
	RateLimit  float64 // Playlist starts per second (default: 0.5)
}

// PlaylistRunResult holds the outcome of processing one export in a batch.
type PlaylistRunResult struct {
	SourcePath string
	Run        *RunResult // nil when processing failed before emitting
	Error      error
}

// BatchResult contains all data from a batch processing operation.
type BatchResult struct {
	TotalPlaylists int
	Succeeded      int
	Failed         int
	Results        []PlaylistRunResult
}

type batchJob struct {
	index int
	path  string
}

// ProcessBatch processes multiple playlist exports concurrently with rate
// limiting and progress tracking.
//
// Each export is processed independently so a malformed CSV or failed download
// only fails its own playlist. The rate limiter paces playlist starts to avoid
// hammering the downloader's upstream service.
func (e *PlaylistEngine) ProcessBatch(ctx context.Context, progress chan<- ProgressUpdate, csvPaths []string, opts BatchOpts) (*BatchResult, error) {
	if len(csvPaths) == 0 {
		return nil, fmt.Errorf("%w: no playlist exports given", shared.ErrMissingArgument)
	}

	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 2
	}
	if opts.NumWorkers > 4 {
		opts.NumWorkers = 4
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 0.5
	}

	result := &BatchResult{
		TotalPlaylists: len(csvPaths),
		Results:        make([]PlaylistRunResult, len(csvPaths)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan batchJob, len(csvPaths))
	done := make(chan struct{}, len(csvPaths))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					result.Results[job.index] = PlaylistRunResult{
						SourcePath: job.path,
						Error:      ctx.Err(),
					}
					done <- struct{}{}
					continue
				default:
				}

				run, err := e.Process(ctx, progress, job.path, opts.ProcessOpts)
				result.Results[job.index] = PlaylistRunResult{
					SourcePath: job.path,
					Run:        run,
					Error:      err,
				}
				done <- struct{}{}
			}
		}()
	}

	go func() {
		for i, path := range csvPaths {
			if err := limiter.Wait(ctx); err != nil {
				for j := i; j < len(csvPaths); j++ {
					result.Results[j] = PlaylistRunResult{
						SourcePath: csvPaths[j],
						Error:      ctx.Err(),
					}
					done <- struct{}{}
				}
				break
			}

			e.sendProgress(progress, batchItemUpdate(i+1, len(csvPaths), shared.PlaylistName(path)))
			jobs <- batchJob{index: i, path: path}
		}
		close(jobs)
	}()

	for range csvPaths {
		<-done
	}
	wg.Wait()

	for i, res := range result.Results {
		name := shared.PlaylistName(res.SourcePath)
		if res.Error != nil {
			result.Failed++
			e.sendProgress(progress, batchFailedUpdate(i+1, len(csvPaths), name, res.Error))
		} else {
			result.Succeeded++
			e.sendProgress(progress, batchCompletedUpdate(i+1, len(csvPaths), name, res.Run))
		}
	}

	return result, nil
}
