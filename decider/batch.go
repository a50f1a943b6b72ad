package decider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-ngramcps/ngram"
	"github.com/forestrie/go-ngramcps/tm"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultChunkSize     = 1024
	DefaultProgressEvery = 100
)

var ErrBadWorkers = errors.New("decider: workers must be at least 1")

// MachineSource returns the transition table of a machine index. It must be
// safe for concurrent use.
type MachineSource interface {
	Machine(index uint32) (*tm.Table, error)
}

// IndexSource yields machine indices, returning io.EOF after the last one.
type IndexSource interface {
	Next() (uint32, error)
}

// IndexSink receives the machine indices of one result class.
type IndexSink interface {
	Write(index uint32) error
}

// Config fixes the classifier parameters and the worker count of a run.
type Config struct {
	Radius          uint8
	MaxContextCount int
	Workers         int
}

// Summary reports the totals of a completed run.
type Summary struct {
	RunID     uuid.UUID
	Total     int
	Loops     int
	Undecided int
	Elapsed   time.Duration
}

// LoopingPercent returns the integer percentage of machines proven to loop.
func (s Summary) LoopingPercent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Loops * 100 / s.Total
}

// Batch classifies the machines of a seed database.
type Batch struct {
	log           logger.Logger
	cfg           Config
	metrics       *Metrics
	chunkSize     int
	progressEvery int
}

type Option func(*Batch)

// WithMetrics updates m for every classified machine.
func WithMetrics(m *Metrics) Option {
	return func(b *Batch) {
		b.metrics = m
	}
}

// WithChunkSize sets how many indices are classified between writes.
func WithChunkSize(n int) Option {
	return func(b *Batch) {
		if n > 0 {
			b.chunkSize = n
		}
	}
}

// WithProgressEvery sets how many machines are processed between progress
// log lines.
func WithProgressEvery(n int) Option {
	return func(b *Batch) {
		if n > 0 {
			b.progressEvery = n
		}
	}
}

func NewBatch(log logger.Logger, cfg Config, opts ...Option) (*Batch, error) {
	if err := ngram.CheckRadius(cfg.Radius); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		return nil, ErrBadWorkers
	}
	b := &Batch{
		log:           log,
		cfg:           cfg,
		chunkSize:     DefaultChunkSize,
		progressEvery: DefaultProgressEvery,
	}
	for _, o := range opts {
		o(b)
	}
	return b, nil
}

// Run classifies every machine named by indices. Each index is written to
// looping when a closure proof was found and to undecided otherwise.
// Cancelling ctx stops the run at the next chunk boundary, the summary then
// covers the machines written so far. Elapsed is set on every return.
func (b *Batch) Run(
	ctx context.Context, db MachineSource, indices IndexSource,
	looping, undecided IndexSink,
) (sum Summary, err error) {

	sum.RunID = uuid.New()
	start := time.Now()
	defer func() {
		sum.Elapsed = time.Since(start)
	}()

	b.log.Infof("run %s: radius=%d max_context_count=%d workers=%d",
		sum.RunID, b.cfg.Radius, b.cfg.MaxContextCount, b.cfg.Workers)

	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		chunk, eof, err := readChunk(indices, b.chunkSize)
		if err != nil {
			return sum, err
		}

		results, err := b.classifyChunk(ctx, db, chunk)
		if err != nil {
			return sum, err
		}

		for i, index := range chunk {
			sink := undecided
			if results[i] == ngram.LoopsForever {
				sink = looping
				sum.Loops++
			} else {
				sum.Undecided++
			}
			if err := sink.Write(index); err != nil {
				return sum, fmt.Errorf("machine_index=%d: %w", index, err)
			}
			sum.Total++

			if sum.Total%b.progressEvery == 0 {
				b.log.Infof("processed %d :: %d%% are looping", sum.Total, sum.LoopingPercent())
			}
		}

		if eof {
			break
		}
	}

	sum.Elapsed = time.Since(start)
	b.log.Infof("run %s done: total=%d loops=%d undecided=%d elapsed=%s",
		sum.RunID, sum.Total, sum.Loops, sum.Undecided, sum.Elapsed)
	return sum, nil
}

// readChunk reads up to n indices. eof is true once the source is drained.
func readChunk(indices IndexSource, n int) (chunk []uint32, eof bool, err error) {
	chunk = make([]uint32, 0, n)
	for len(chunk) < n {
		index, err := indices.Next()
		if errors.Is(err, io.EOF) {
			return chunk, true, nil
		}
		if err != nil {
			return nil, false, err
		}
		chunk = append(chunk, index)
	}
	return chunk, false, nil
}

func (b *Batch) classifyChunk(ctx context.Context, db MachineSource, chunk []uint32) ([]ngram.Result, error) {
	results := make([]ngram.Result, len(chunk))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers)
	for i, index := range chunk {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := db.Machine(index)
			if err != nil {
				return fmt.Errorf("machine_index=%d: %w", index, err)
			}
			c, err := ngram.Decide(m, b.cfg.Radius, b.cfg.MaxContextCount)
			if err != nil {
				return fmt.Errorf("machine_index=%d: %w", index, err)
			}
			b.metrics.observe(c)
			results[i] = c.Result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
