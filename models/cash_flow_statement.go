package models

import "github.com/shopspring/decimal"

// CashFlowStatement is one cash flow statement of one company for one period.
type CashFlowStatement struct {
	Generic
	Filing

	// Operating activities
	NetIncome                            decimal.NullDecimal `gorm:"type:numeric" json:"netIncome"`
	DepreciationAndAmortization          decimal.NullDecimal `gorm:"type:numeric" json:"depreciationAndAmortization"`
	DeferredIncomeTax                    decimal.NullDecimal `gorm:"type:numeric" json:"deferredIncomeTax"`
	StockBasedCompensation               decimal.NullDecimal `gorm:"type:numeric" json:"stockBasedCompensation"`
	ChangeInWorkingCapital               decimal.NullDecimal `gorm:"type:numeric" json:"changeInWorkingCapital"`
	AccountsReceivables                  decimal.NullDecimal `gorm:"type:numeric" json:"accountsReceivables"`
	Inventory                            decimal.NullDecimal `gorm:"type:numeric" json:"inventory"`
	AccountsPayables                     decimal.NullDecimal `gorm:"type:numeric" json:"accountsPayables"`
	OtherWorkingCapital                  decimal.NullDecimal `gorm:"type:numeric" json:"otherWorkingCapital"`
	OtherNonCashItems                    decimal.NullDecimal `gorm:"type:numeric" json:"otherNonCashItems"`
	NetCashProvidedByOperatingActivities decimal.Decimal     `gorm:"type:numeric;not null" json:"netCashProvidedByOperatingActivities" fmp:",required"`

	// Investing activities
	InvestmentsInPropertyPlantAndEquipment decimal.NullDecimal `gorm:"type:numeric" json:"investmentsInPropertyPlantAndEquipment"`
	AcquisitionsNet                        decimal.NullDecimal `gorm:"type:numeric" json:"acquisitionsNet"`
	PurchasesOfInvestments                 decimal.NullDecimal `gorm:"type:numeric" json:"purchasesOfInvestments"`
	SalesMaturitiesOfInvestments           decimal.NullDecimal `gorm:"type:numeric" json:"salesMaturitiesOfInvestments"`
	OtherInvestingActivities               decimal.NullDecimal `gorm:"type:numeric" json:"otherInvestingActivities"`
	NetCashUsedForInvestingActivities      decimal.Decimal     `gorm:"type:numeric;not null" json:"netCashUsedForInvestingActivities" fmp:",required"`

	// Financing activities
	DebtRepayment                            decimal.NullDecimal `gorm:"type:numeric" json:"debtRepayment"`
	CommonStockIssued                        decimal.NullDecimal `gorm:"type:numeric" json:"commonStockIssued"`
	CommonStockRepurchased                   decimal.NullDecimal `gorm:"type:numeric" json:"commonStockRepurchased"`
	DividendsPaid                            decimal.NullDecimal `gorm:"type:numeric" json:"dividendsPaid"`
	OtherFinancingActivities                 decimal.NullDecimal `gorm:"type:numeric" json:"otherFinancingActivities"`
	NetCashUsedProvidedByFinancingActivities decimal.Decimal     `gorm:"type:numeric;not null" json:"netCashUsedProvidedByFinancingActivities" fmp:",required"`

	EffectOfForexChangesOnCash decimal.NullDecimal `gorm:"type:numeric" json:"effectOfForexChangesOnCash"`
	NetChangeInCash            decimal.NullDecimal `gorm:"type:numeric" json:"netChangeInCash"`
	CashAtEndOfPeriod          decimal.NullDecimal `gorm:"type:numeric" json:"cashAtEndOfPeriod"`
	CashAtBeginningOfPeriod    decimal.NullDecimal `gorm:"type:numeric" json:"cashAtBeginningOfPeriod"`
	OperatingCashFlow          decimal.NullDecimal `gorm:"type:numeric" json:"operatingCashFlow"`
	CapitalExpenditure         decimal.NullDecimal `gorm:"type:numeric" json:"capitalExpenditure"`
	FreeCashFlow               decimal.NullDecimal `gorm:"type:numeric" json:"freeCashFlow"`
}

func (CashFlowStatement) TableName() string {
	return "cash_flow_statements"
}
