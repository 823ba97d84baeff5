package models

import "github.com/shopspring/decimal"

// IncomeStatement is one income statement of one company for one period.
type IncomeStatement struct {
	Generic
	Filing

	// Revenue and costs
	Revenue                                 decimal.Decimal     `gorm:"type:numeric;not null" json:"revenue" fmp:",required"`
	CostOfRevenue                           decimal.NullDecimal `gorm:"type:numeric" json:"costOfRevenue"`
	GrossProfit                             decimal.Decimal     `gorm:"type:numeric;not null" json:"grossProfit" fmp:",required"`
	GrossProfitRatio                        decimal.NullDecimal `gorm:"type:numeric" json:"grossProfitRatio"`
	ResearchAndDevelopmentExpenses          decimal.NullDecimal `gorm:"type:numeric" json:"researchAndDevelopmentExpenses"`
	GeneralAndAdministrativeExpenses        decimal.NullDecimal `gorm:"type:numeric" json:"generalAndAdministrativeExpenses"`
	SellingAndMarketingExpenses             decimal.NullDecimal `gorm:"type:numeric" json:"sellingAndMarketingExpenses"`
	SellingGeneralAndAdministrativeExpenses decimal.NullDecimal `gorm:"type:numeric" json:"sellingGeneralAndAdministrativeExpenses"`
	OtherExpenses                           decimal.NullDecimal `gorm:"type:numeric" json:"otherExpenses"`
	OperatingExpenses                       decimal.NullDecimal `gorm:"type:numeric" json:"operatingExpenses"`
	CostAndExpenses                         decimal.NullDecimal `gorm:"type:numeric" json:"costAndExpenses"`

	// Operating result
	InterestIncome              decimal.NullDecimal `gorm:"type:numeric" json:"interestIncome"`
	InterestExpense             decimal.NullDecimal `gorm:"type:numeric" json:"interestExpense"`
	DepreciationAndAmortization decimal.NullDecimal `gorm:"type:numeric" json:"depreciationAndAmortization"`
	Ebitda                      decimal.NullDecimal `gorm:"type:numeric" json:"ebitda"`
	EbitdaRatio                 decimal.NullDecimal `gorm:"type:numeric" json:"ebitdaRatio" fmp:"ebitdaratio"`
	OperatingIncome             decimal.Decimal     `gorm:"type:numeric;not null" json:"operatingIncome" fmp:",required"`
	OperatingIncomeRatio        decimal.NullDecimal `gorm:"type:numeric" json:"operatingIncomeRatio"`
	TotalOtherIncomeExpensesNet decimal.NullDecimal `gorm:"type:numeric" json:"totalOtherIncomeExpensesNet"`

	// Net result
	IncomeBeforeTax          decimal.NullDecimal `gorm:"type:numeric" json:"incomeBeforeTax"`
	IncomeBeforeTaxRatio     decimal.NullDecimal `gorm:"type:numeric" json:"incomeBeforeTaxRatio"`
	IncomeTaxExpense         decimal.NullDecimal `gorm:"type:numeric" json:"incomeTaxExpense"`
	NetIncome                decimal.Decimal     `gorm:"type:numeric;not null" json:"netIncome" fmp:",required"`
	NetIncomeRatio           decimal.NullDecimal `gorm:"type:numeric" json:"netIncomeRatio"`
	Eps                      decimal.Decimal     `gorm:"type:numeric;not null" json:"eps" fmp:",required"`
	EpsDiluted               decimal.NullDecimal `gorm:"type:numeric" json:"epsDiluted" fmp:"epsdiluted"`
	WeightedAverageShsOut    decimal.NullDecimal `gorm:"type:numeric" json:"weightedAverageShsOut"`
	WeightedAverageShsOutDil decimal.NullDecimal `gorm:"type:numeric" json:"weightedAverageShsOutDil"`
}

func (IncomeStatement) TableName() string {
	return "income_statements"
}
