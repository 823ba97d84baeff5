package fetcher_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"fundamentals/fetcher"
	"fundamentals/internal/testdb"
	"fundamentals/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type call struct {
	Type   models.StatementType
	Symbol string
}

type fakeProvider struct {
	statements map[call][]json.RawMessage
	symbols    []string
	calls      []call
}

func (p *fakeProvider) FetchStatement(_ context.Context, symbol string, statementType models.StatementType, _ models.Period) []json.RawMessage {
	c := call{statementType, symbol}
	p.calls = append(p.calls, c)

	records, ok := p.statements[c]
	if !ok {
		return []json.RawMessage{}
	}

	return records
}

func (p *fakeProvider) FetchAllSymbols(context.Context) []string {
	return p.symbols
}

func income(symbol, date string, withEPS bool) json.RawMessage {
	eps := `"eps": 6.16,`
	if !withEPS {
		eps = ""
	}

	return json.RawMessage(fmt.Sprintf(`{
		"date": %q, "symbol": %q, "reportedCurrency": "USD", "period": "FY",
		"revenue": 383285000000, "grossProfit": 169148000000, "operatingIncome": 114301000000,
		%s "netIncome": 96995000000
	}`, date, symbol, eps))
}

type stores struct {
	db            *gorm.DB
	incomes       *models.Repository[models.IncomeStatement]
	balanceSheets *models.Repository[models.BalanceSheetStatement]
	cashFlows     *models.Repository[models.CashFlowStatement]
}

func newStores(t *testing.T) stores {
	db := testdb.New(t)

	return stores{
		db:            db,
		incomes:       models.NewRepository[models.IncomeStatement](db, nil),
		balanceSheets: models.NewRepository[models.BalanceSheetStatement](db, nil),
		cashFlows:     models.NewRepository[models.CashFlowStatement](db, nil),
	}
}

func (s stores) targets() []fetcher.Target {
	return []fetcher.Target{
		fetcher.Into(models.IncomeStatementType, s.incomes),
		fetcher.Into(models.BalanceSheetStatementType, s.balanceSheets),
		fetcher.Into(models.CashFlowStatementType, s.cashFlows),
	}
}

func incomeTotal(t *testing.T, s stores, symbol string) int64 {
	page, err := s.incomes.Read(context.Background(), symbol, 1, 10)
	require.NoError(t, err)

	return page.Pagination.Total
}

func TestRunIsolatesRecordFailures(t *testing.T) {
	s := newStores(t)
	provider := &fakeProvider{statements: map[call][]json.RawMessage{
		{models.IncomeStatementType, "AAPL"}: {
			income("AAPL", "2023-09-30", true),
			income("AAPL", "2022-09-24", false),
			income("AAPL", "2021-09-25", true),
		},
	}}

	f := fetcher.NewStatementFetcher(s.db, provider, s.targets(), fetcher.Options{Symbols: []string{"AAPL"}}, nil)
	report, err := f.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	result := report.Results[0]
	assert.Equal(t, models.IncomeStatementType, result.Type)
	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.RolledBack)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "eps")

	assert.Equal(t, int64(2), incomeTotal(t, s, "AAPL"))
	assert.Equal(t, 2, report.Created())
	assert.Equal(t, 1, report.Failed())
}

func TestRunIsIdempotent(t *testing.T) {
	s := newStores(t)
	provider := &fakeProvider{statements: map[call][]json.RawMessage{
		{models.IncomeStatementType, "AAPL"}: {
			income("AAPL", "2023-09-30", true),
			income("AAPL", "2022-09-24", true),
		},
	}}

	f := fetcher.NewStatementFetcher(s.db, provider, s.targets(), fetcher.Options{Symbols: []string{"AAPL"}}, nil)

	_, err := f.Run(context.Background())
	require.NoError(t, err)

	report, err := f.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Created())
	assert.Equal(t, 2, report.Failed())
	assert.False(t, report.Results[0].RolledBack, "duplicates do not roll back the symbol")
	assert.Equal(t, int64(2), incomeTotal(t, s, "AAPL"))
}

func TestRunOrder(t *testing.T) {
	s := newStores(t)
	provider := &fakeProvider{}

	f := fetcher.NewStatementFetcher(s.db, provider, s.targets(), fetcher.Options{Symbols: []string{"AAPL", "MSFT"}}, nil)
	report, err := f.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []call{
		{models.IncomeStatementType, "AAPL"},
		{models.IncomeStatementType, "MSFT"},
		{models.BalanceSheetStatementType, "AAPL"},
		{models.BalanceSheetStatementType, "MSFT"},
		{models.CashFlowStatementType, "AAPL"},
		{models.CashFlowStatementType, "MSFT"},
	}, provider.calls)

	for _, result := range report.Results {
		assert.Zero(t, result.Fetched)
		assert.Zero(t, result.Created)
		assert.False(t, result.RolledBack)
	}
}

func TestRunAllSymbols(t *testing.T) {
	s := newStores(t)
	provider := &fakeProvider{
		symbols: []string{"MSFT"},
		statements: map[call][]json.RawMessage{
			{models.IncomeStatementType, "MSFT"}: {income("MSFT", "2023-06-30", true)},
		},
	}

	options := fetcher.Options{Symbols: []string{"AAPL"}, AllSymbols: true}
	f := fetcher.NewStatementFetcher(s.db, provider, s.targets()[:1], options, nil)
	report, err := f.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []call{{models.IncomeStatementType, "MSFT"}}, provider.calls)
	assert.Equal(t, 1, report.Created())
	assert.Equal(t, int64(1), incomeTotal(t, s, "MSFT"))
}

func TestRunWithoutSymbols(t *testing.T) {
	s := newStores(t)

	f := fetcher.NewStatementFetcher(s.db, &fakeProvider{}, s.targets(), fetcher.Options{}, nil)
	_, err := f.Run(context.Background())
	assert.ErrorIs(t, err, fetcher.ErrNoSymbols)

	f = fetcher.NewStatementFetcher(s.db, &fakeProvider{}, s.targets(), fetcher.Options{AllSymbols: true}, nil)
	_, err = f.Run(context.Background())
	assert.ErrorIs(t, err, fetcher.ErrNoSymbols)
}

type panickingCreator struct {
	next  fetcher.Creator
	after int
	seen  int
}

func (c *panickingCreator) Create(ctx context.Context, raw json.RawMessage) (uint, error) {
	c.seen++
	if c.seen > c.after {
		panic("store exploded")
	}

	return c.next.Create(ctx, raw)
}

func TestRunRollsBackSymbol(t *testing.T) {
	s := newStores(t)
	provider := &fakeProvider{statements: map[call][]json.RawMessage{
		{models.IncomeStatementType, "AAPL"}: {
			income("AAPL", "2023-09-30", true),
			income("AAPL", "2022-09-24", true),
		},
		{models.IncomeStatementType, "MSFT"}: {
			income("MSFT", "2023-06-30", true),
		},
	}}

	target := fetcher.Target{
		Type: models.IncomeStatementType,
		Bind: func(tx *gorm.DB) fetcher.Creator {
			return &panickingCreator{next: s.incomes.WithTx(tx), after: 1}
		},
	}

	f := fetcher.NewStatementFetcher(s.db, provider, []fetcher.Target{target}, fetcher.Options{Symbols: []string{"AAPL", "MSFT"}}, nil)
	report, err := f.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	aapl := report.Results[0]
	assert.True(t, aapl.RolledBack)
	assert.Zero(t, aapl.Created)
	assert.Equal(t, 1, aapl.Failed)
	assert.ErrorContains(t, aapl.Err, "store exploded")
	assert.Zero(t, incomeTotal(t, s, "AAPL"), "the first record is rolled back with the symbol")

	msft := report.Results[1]
	assert.False(t, msft.RolledBack)
	assert.Equal(t, 1, msft.Created)
	assert.Equal(t, int64(1), incomeTotal(t, s, "MSFT"))
	assert.Equal(t, 1, report.RolledBack())
}

func TestRunPacesProviderCalls(t *testing.T) {
	s := newStores(t)
	provider := &fakeProvider{}

	options := fetcher.Options{Symbols: []string{"AAPL", "MSFT", "GOOGL"}, Delay: 20 * time.Millisecond}
	f := fetcher.NewStatementFetcher(s.db, provider, s.targets()[:1], options, nil)

	start := time.Now()
	_, err := f.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, provider.calls, 3)
	assert.GreaterOrEqual(t, time.Since(start), 35*time.Millisecond)
}

func TestRunCancelled(t *testing.T) {
	s := newStores(t)
	provider := &fakeProvider{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := fetcher.NewStatementFetcher(s.db, provider, s.targets(), fetcher.Options{Symbols: []string{"AAPL"}}, nil)
	report, err := f.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
	assert.Empty(t, provider.calls)
}
