// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// Provider supplies the full record set to the filter and analysis stages.
// Callers must not modify the returned slice.
type Provider interface {
	Corpus(ctx context.Context) ([]types.Record, error)
}

// Memo generates each seed's corpus on first use and returns the same slice
// on every later call. It is safe for concurrent use.
type Memo struct {
	mu     sync.Mutex
	sets   map[int64][]types.Record
	logger *zap.Logger
}

// NewMemo returns an empty Memo. A nil logger discards log output.
func NewMemo(logger *zap.Logger) *Memo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Memo{
		sets:   make(map[int64][]types.Record),
		logger: logger,
	}
}

// GetOrCreate returns the corpus for seed, generating it on first request.
func (m *Memo) GetOrCreate(seed int64) []types.Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	if records, ok := m.sets[seed]; ok {
		return records
	}

	start := time.Now()
	records := Generate(seed)
	m.sets[seed] = records
	m.logger.Debug("generated corpus",
		zap.Int64("seed", seed),
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return records
}

// Seeded returns a Provider that serves the corpus for seed from m.
func (m *Memo) Seeded(seed int64) Provider {
	return seeded{memo: m, seed: seed}
}

type seeded struct {
	memo *Memo
	seed int64
}

func (s seeded) Corpus(ctx context.Context) ([]types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.memo.GetOrCreate(s.seed), nil
}

// Static serves a fixed record set. Tests use it to substitute small
// fixtures for the generated corpus.
type Static []types.Record

// Corpus returns the fixed records.
func (s Static) Corpus(ctx context.Context) ([]types.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []types.Record(s), nil
}

var shared = sync.OnceValue(func() *Memo { return NewMemo(nil) })

// GetOrCreate returns the process-wide memoized corpus for seed.
func GetOrCreate(seed int64) []types.Record {
	return shared().GetOrCreate(seed)
}
