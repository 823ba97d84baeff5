package models

import (
	"sort"
	"strings"
)

// StatementType names a kind of financial statement the way the provider's
// endpoints do.
type StatementType string

const (
	IncomeStatementType       StatementType = "income-statement"
	BalanceSheetStatementType StatementType = "balance-sheet-statement"
	CashFlowStatementType     StatementType = "cash-flow-statement"
)

// StatementTypes lists every statement type in synchronization order.
var StatementTypes = []StatementType{
	IncomeStatementType,
	BalanceSheetStatementType,
	CashFlowStatementType,
}

var statementTypeAliases = map[string]StatementType{
	"income-statement":        IncomeStatementType,
	"income":                  IncomeStatementType,
	"balance-sheet-statement": BalanceSheetStatementType,
	"balance-sheet":           BalanceSheetStatementType,
	"balance":                 BalanceSheetStatementType,
	"cash-flow-statement":     CashFlowStatementType,
	"cash-flow":               CashFlowStatementType,
	"cashflow":                CashFlowStatementType,
}

// ParseStatementType accepts the provider name of a statement type and the
// shorter names used by older routes.
func ParseStatementType(s string) (StatementType, error) {
	t, ok := statementTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrUnknownStatement
	}

	return t, nil
}

// StatementTypeAliases returns every accepted name for t, canonical name first.
func StatementTypeAliases(t StatementType) []string {
	names := []string{string(t)}
	for alias, target := range statementTypeAliases {
		if target == t && alias != string(t) {
			names = append(names, alias)
		}
	}
	sort.Strings(names[1:])

	return names
}

type Period string

const (
	AnnualPeriod  Period = "annual"
	QuarterPeriod Period = "quarter"
)

func ParsePeriod(s string) (Period, bool) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case "", AnnualPeriod:
		return AnnualPeriod, true
	case QuarterPeriod:
		return QuarterPeriod, true
	}

	return "", false
}
