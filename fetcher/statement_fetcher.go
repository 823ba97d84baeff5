package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fundamentals/models"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

var ErrNoSymbols = errors.New("no symbols to synchronize")

// Provider is the statement source.
type Provider interface {
	FetchStatement(ctx context.Context, symbol string, statementType models.StatementType, period models.Period) []json.RawMessage
	FetchAllSymbols(ctx context.Context) []string
}

// Creator stores one raw statement.
type Creator interface {
	Create(ctx context.Context, raw json.RawMessage) (uint, error)
}

// Target binds a statement type to the repository that stores it.
type Target struct {
	Type models.StatementType
	// Bind returns a creator writing inside tx.
	Bind func(tx *gorm.DB) Creator
}

// Into targets repo for statements of the given type.
func Into[T models.Statement](statementType models.StatementType, repo *models.Repository[T]) Target {
	return Target{
		Type: statementType,
		Bind: func(tx *gorm.DB) Creator {
			return repo.WithTx(tx)
		},
	}
}

type Options struct {
	// Symbols is the roster to synchronize.
	Symbols []string
	// AllSymbols replaces the roster with the provider's symbol directory.
	AllSymbols bool
	Period     models.Period
	// Delay is the minimum time between the starts of two provider calls.
	Delay time.Duration
}

// StatementFetcher copies statements from the provider into the store, one
// statement type and one symbol at a time.
type StatementFetcher struct {
	db       *gorm.DB
	provider Provider
	targets  []Target
	options  Options
	limiter  *rate.Limiter
	logger   *zap.SugaredLogger
}

func NewStatementFetcher(db *gorm.DB, provider Provider, targets []Target, options Options, logger *zap.SugaredLogger) *StatementFetcher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	if options.Period == "" {
		options.Period = models.AnnualPeriod
	}

	// Delay spaces the starts of provider calls. Time spent storing a symbol
	// counts toward the gap, so a slow symbol is followed by an immediate call.
	limit := rate.Inf
	if options.Delay > 0 {
		limit = rate.Every(options.Delay)
	}

	return &StatementFetcher{
		db:       db,
		provider: provider,
		targets:  targets,
		options:  options,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger,
	}
}

// SymbolResult is the outcome of synchronizing one symbol for one statement
// type.
type SymbolResult struct {
	Type    models.StatementType `json:"type"`
	Symbol  string               `json:"symbol"`
	Fetched int                  `json:"fetched"`
	Created int                  `json:"created"`
	Failed  int                  `json:"failed"`
	// Errors holds one message per record that could not be stored.
	Errors []string `json:"errors,omitempty"`
	// RolledBack is set when none of the symbol's records were kept.
	RolledBack bool  `json:"rolledBack"`
	Err        error `json:"-"`
}

type Report struct {
	Results []SymbolResult `json:"results"`
}

func (r *Report) Created() int {
	n := 0
	for _, result := range r.Results {
		n += result.Created
	}

	return n
}

func (r *Report) Failed() int {
	n := 0
	for _, result := range r.Results {
		n += result.Failed
	}

	return n
}

func (r *Report) RolledBack() int {
	n := 0
	for _, result := range r.Results {
		if result.RolledBack {
			n++
		}
	}

	return n
}

// Run synchronizes every configured statement type for every symbol. Record
// and symbol failures are logged and reported; Run itself only fails when
// there is nothing to do or ctx is done.
func (f *StatementFetcher) Run(ctx context.Context) (*Report, error) {
	logger := f.logger
	report := &Report{}

	symbols, err := f.symbols(ctx)
	if err != nil {
		return report, err
	}

	logger.Infow("Running statement sync...", "symbols", len(symbols), "types", len(f.targets), "period", f.options.Period)

	for _, target := range f.targets {
		for _, symbol := range symbols {
			if err := f.limiter.Wait(ctx); err != nil {
				return report, err
			}

			report.Results = append(report.Results, f.syncSymbol(ctx, target, symbol))
		}
	}

	logger.Infow("Statement sync finished", "created", report.Created(), "failed", report.Failed(), "rolledBack", report.RolledBack())

	return report, nil
}

func (f *StatementFetcher) symbols(ctx context.Context) ([]string, error) {
	symbols := f.options.Symbols
	if f.options.AllSymbols {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		symbols = f.provider.FetchAllSymbols(ctx)
	}

	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}

	return symbols, nil
}

func (f *StatementFetcher) syncSymbol(ctx context.Context, target Target, symbol string) (result SymbolResult) {
	logger := f.logger.With("type", target.Type, "symbol", symbol)
	result = SymbolResult{Type: target.Type, Symbol: symbol}

	logger.Infof("Fetching %v for %v", target.Type, symbol)

	records := f.provider.FetchStatement(ctx, symbol, target.Type, f.options.Period)
	result.Fetched = len(records)
	if len(records) == 0 {
		logger.Infof("No statements for %v", symbol)
		return result
	}

	rollback := func(err error) {
		result.Failed += result.Created
		result.Created = 0
		result.RolledBack = true
		result.Err = err
		logger.Errorw("Rolled back symbol", "error", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(fmt.Errorf("panic: %v", p))
		}
	}()

	err := f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		creator := target.Bind(tx)
		for i, raw := range records {
			id, err := creator.Create(ctx, raw)
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, err.Error())
				logger.Warnw("Unable to store statement", "index", i, "error", err)
				continue
			}

			result.Created++
			logger.Debugw("Stored statement", "index", i, "id", id)
		}

		return nil
	})
	if err != nil {
		rollback(err)
		return result
	}

	logger.Infow("Stored statements", "fetched", result.Fetched, "created", result.Created, "failed", result.Failed)

	return result
}
