package reflow

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/tsawler/reflow/layout"
	"github.com/tsawler/reflow/logger"
	"github.com/tsawler/reflow/text"
	"golang.org/x/sync/semaphore"
)

// Processor reconstructs multi-page documents with bounded concurrency.
// Each page is an independent run sequence, so pages fan out across a
// worker pool; output is re-assembled in page order.
type Processor struct {
	cfg     *Config
	sem     *semaphore.Weighted
	grouper *layout.Grouper
}

// PageParagraphs is one page's reconstruction result as emitted by
// [Processor.ReconstructStream]
type PageParagraphs struct {
	// Page is the 0-based page index
	Page int

	// Paragraphs are the page's reconstructed paragraphs in reading order
	Paragraphs []layout.Paragraph

	// Truncated is true when the configured paragraph limit was reached
	// on this page; no further pages follow
	Truncated bool
}

// NewProcessor validates the config and creates a processor
func NewProcessor(cfg *Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid processor config: %w", err)
	}

	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}

	logger.Debug(fmt.Sprintf("Processor initialized: max_concurrent_docs=%d max_workers_per_doc=%d",
		cfg.MaxConcurrentDocs, cfg.MaxWorkersPerDoc))

	return &Processor{
		cfg:     cfg,
		sem:     semaphore.NewWeighted(int64(cfg.MaxConcurrentDocs)),
		grouper: layout.NewGrouperWithConfig(cfg.Grouper),
	}, nil
}

// ReconstructDocument reconstructs every page of a document, in page order,
// respecting Config.MaxTotalParagraphs as a limit. It returns one paragraph
// slice per emitted page and a truncated flag when the output hit the limit.
func (p *Processor) ReconstructDocument(ctx context.Context, pages [][]text.TextRun) ([][]layout.Paragraph, bool, error) {
	if err := p.acquireSlot(ctx); err != nil {
		return nil, false, err
	}
	defer p.sem.Release(1)

	total := len(pages)
	logger.Debug(fmt.Sprintf("Starting document reconstruction: pages=%d", total))
	if total == 0 {
		return nil, false, nil
	}

	numWorkers := p.adjustWorkerCount(p.cfg.MaxWorkersPerDoc)
	jobs, results := make(chan int, total), make(chan pageResult, total)

	var wg sync.WaitGroup
	p.startWorkers(ctx, pages, jobs, results, numWorkers, &wg)
	feedErr := p.feedJobs(ctx, total, jobs)
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out, truncated, err := p.emitInOrder(results)
	if err != nil {
		return nil, false, err
	}
	if feedErr != nil {
		return nil, false, feedErr
	}

	logger.Debug(fmt.Sprintf("Document reconstruction completed: pages=%d truncated=%v", len(out), truncated))
	return out, truncated, nil
}

// ReconstructStream reconstructs pages concurrently and streams them in
// page order. The channel closes after the last page, after a truncation,
// or when ctx is cancelled. A truncated page carries Truncated=true; when
// the paragraph limit falls exactly on a page boundary, the truncation is
// reported as a final empty page with Truncated set. Page failures can only
// arise from ctx cancellation and are signaled by the channel closing
// early; callers that need to distinguish completion from cancellation
// should check ctx.Err after the channel closes.
func (p *Processor) ReconstructStream(ctx context.Context, pages [][]text.TextRun) (<-chan PageParagraphs, error) {
	if err := p.acquireSlot(ctx); err != nil {
		return nil, err
	}

	total := len(pages)
	out := make(chan PageParagraphs)
	if total == 0 {
		p.sem.Release(1)
		close(out)
		return out, nil
	}

	numWorkers := p.adjustWorkerCount(p.cfg.MaxWorkersPerDoc)
	jobs, results := make(chan int, total), make(chan pageResult, total)

	var wg sync.WaitGroup
	p.startWorkers(ctx, pages, jobs, results, numWorkers, &wg)

	go func() {
		defer p.sem.Release(1)
		defer close(out)

		_ = p.feedJobs(ctx, total, jobs)
		close(jobs)

		go func() {
			wg.Wait()
			close(results)
		}()

		p.streamInOrder(ctx, results, out)
	}()

	return out, nil
}

type pageResult struct {
	index      int
	paragraphs []layout.Paragraph
	err        error
}

// emitInOrder collects page results and assembles them in page order,
// applying the paragraph limit
func (p *Processor) emitInOrder(results chan pageResult) ([][]layout.Paragraph, bool, error) {
	pending := make(map[int][]layout.Paragraph)
	done := make(map[int]bool)
	nextPage := 0
	emitted := 0
	truncated := false
	var out [][]layout.Paragraph
	var firstErr error

	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("page %d: %w", res.index, res.err)
			}
			continue
		}
		pending[res.index] = res.paragraphs
		done[res.index] = true

		for !truncated && done[nextPage] {
			paragraphs := pending[nextPage]

			if limit := p.cfg.MaxTotalParagraphs; limit > 0 {
				remaining := limit - emitted
				if remaining <= 0 {
					truncated = true
					break
				}
				if len(paragraphs) > remaining {
					paragraphs = paragraphs[:remaining]
					truncated = true
					logger.Debug(fmt.Sprintf("Paragraph limit reached: limit=%d page=%d", limit, nextPage))
				}
			}

			out = append(out, paragraphs)
			emitted += len(paragraphs)
			delete(pending, nextPage)
			delete(done, nextPage)
			nextPage++
		}
	}

	if firstErr != nil {
		return nil, false, firstErr
	}
	return out, truncated, nil
}

// streamInOrder is emitInOrder's streaming counterpart
func (p *Processor) streamInOrder(ctx context.Context, results chan pageResult, out chan<- PageParagraphs) {
	pending := make(map[int][]layout.Paragraph)
	done := make(map[int]bool)
	nextPage := 0
	emitted := 0

	for res := range results {
		if res.err != nil {
			logger.Error(fmt.Sprintf("page %d reconstruction failed: %v", res.index, res.err))
			return
		}
		pending[res.index] = res.paragraphs
		done[res.index] = true

		for done[nextPage] {
			paragraphs := pending[nextPage]
			truncated := false

			if limit := p.cfg.MaxTotalParagraphs; limit > 0 {
				remaining := limit - emitted
				if remaining <= 0 {
					// The limit landed exactly on the previous page
					// boundary; emit an empty marker page so consumers
					// still see the truncation
					select {
					case out <- PageParagraphs{Page: nextPage, Truncated: true}:
					case <-ctx.Done():
					}
					return
				}
				if len(paragraphs) > remaining {
					paragraphs = paragraphs[:remaining]
					truncated = true
				}
			}

			select {
			case out <- PageParagraphs{Page: nextPage, Paragraphs: paragraphs, Truncated: truncated}:
			case <-ctx.Done():
				return
			}
			if truncated {
				return
			}

			emitted += len(paragraphs)
			delete(pending, nextPage)
			delete(done, nextPage)
			nextPage++
		}
	}
}

func (p *Processor) acquireSlot(ctx context.Context) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire slot: %w", err)
	}
	return nil
}

func (p *Processor) adjustWorkerCount(maxWorkers int) int {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if maxWorkers > runtime.NumCPU() {
		maxWorkers = runtime.NumCPU()
	}
	return maxWorkers
}

func (p *Processor) startWorkers(ctx context.Context, pages [][]text.TextRun, jobs <-chan int, results chan<- pageResult, numWorkers int, wg *sync.WaitGroup) {
	logger.Debug(fmt.Sprintf("Spawning workers: num_workers=%d", numWorkers))
	for w := 1; w <= numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range jobs {
				paragraphs, err := p.reconstructPageWithRetries(ctx, pages[i])
				results <- pageResult{i, paragraphs, err}
				if err != nil {
					logger.Debug(fmt.Sprintf("Worker: page reconstruction error: worker_id=%d page=%d err=%v", id, i, err))
				}
			}
		}(w)
	}
}

// reconstructPageWithRetries wraps the pure per-page reconstruction in a
// timeout context. The engine itself cannot fail, so retries only matter
// when an attempt loses a cancellation race.
func (p *Processor) reconstructPageWithRetries(ctx context.Context, runs []text.TextRun) ([]layout.Paragraph, error) {
	var paragraphs []layout.Paragraph
	var err error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		ctxPage, cancel := context.WithTimeout(ctx, p.cfg.WorkerTimeout)
		paragraphs, err = p.reconstructPage(ctxPage, runs)
		cancel()
		if err == nil {
			break
		}
	}
	return paragraphs, err
}

func (p *Processor) reconstructPage(ctx context.Context, runs []text.TextRun) ([]layout.Paragraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.grouper.Reconstruct(runs), nil
}

func (p *Processor) feedJobs(ctx context.Context, total int, jobs chan<- int) error {
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			logger.Debug("Context cancelled while feeding jobs")
			return ctx.Err()
		case jobs <- i:
		}
	}
	return nil
}
