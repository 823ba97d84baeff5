package models

import "github.com/shopspring/decimal"

// BalanceSheetStatement is one balance sheet of one company at one date.
type BalanceSheetStatement struct {
	Generic
	Filing

	// Assets
	CashAndCashEquivalents      decimal.NullDecimal `gorm:"type:numeric" json:"cashAndCashEquivalents"`
	ShortTermInvestments        decimal.NullDecimal `gorm:"type:numeric" json:"shortTermInvestments"`
	CashAndShortTermInvestments decimal.NullDecimal `gorm:"type:numeric" json:"cashAndShortTermInvestments"`
	NetReceivables              decimal.NullDecimal `gorm:"type:numeric" json:"netReceivables"`
	Inventory                   decimal.NullDecimal `gorm:"type:numeric" json:"inventory"`
	OtherCurrentAssets          decimal.NullDecimal `gorm:"type:numeric" json:"otherCurrentAssets"`
	TotalCurrentAssets          decimal.NullDecimal `gorm:"type:numeric" json:"totalCurrentAssets"`
	PropertyPlantEquipmentNet   decimal.NullDecimal `gorm:"type:numeric" json:"propertyPlantEquipmentNet"`
	Goodwill                    decimal.NullDecimal `gorm:"type:numeric" json:"goodwill"`
	IntangibleAssets            decimal.NullDecimal `gorm:"type:numeric" json:"intangibleAssets"`
	GoodwillAndIntangibleAssets decimal.NullDecimal `gorm:"type:numeric" json:"goodwillAndIntangibleAssets"`
	LongTermInvestments         decimal.NullDecimal `gorm:"type:numeric" json:"longTermInvestments"`
	TaxAssets                   decimal.NullDecimal `gorm:"type:numeric" json:"taxAssets"`
	OtherNonCurrentAssets       decimal.NullDecimal `gorm:"type:numeric" json:"otherNonCurrentAssets"`
	TotalNonCurrentAssets       decimal.NullDecimal `gorm:"type:numeric" json:"totalNonCurrentAssets"`
	OtherAssets                 decimal.NullDecimal `gorm:"type:numeric" json:"otherAssets"`
	TotalAssets                 decimal.Decimal     `gorm:"type:numeric;not null" json:"totalAssets" fmp:",required"`
	TotalInvestments            decimal.NullDecimal `gorm:"type:numeric" json:"totalInvestments"`

	// Liabilities
	AccountPayables                  decimal.NullDecimal `gorm:"type:numeric" json:"accountPayables"`
	ShortTermDebt                    decimal.NullDecimal `gorm:"type:numeric" json:"shortTermDebt"`
	TaxPayables                      decimal.NullDecimal `gorm:"type:numeric" json:"taxPayables"`
	DeferredRevenue                  decimal.NullDecimal `gorm:"type:numeric" json:"deferredRevenue"`
	OtherCurrentLiabilities          decimal.NullDecimal `gorm:"type:numeric" json:"otherCurrentLiabilities"`
	TotalCurrentLiabilities          decimal.NullDecimal `gorm:"type:numeric" json:"totalCurrentLiabilities"`
	LongTermDebt                     decimal.NullDecimal `gorm:"type:numeric" json:"longTermDebt"`
	DeferredRevenueNonCurrent        decimal.NullDecimal `gorm:"type:numeric" json:"deferredRevenueNonCurrent"`
	DeferredTaxLiabilitiesNonCurrent decimal.NullDecimal `gorm:"type:numeric" json:"deferredTaxLiabilitiesNonCurrent"`
	OtherNonCurrentLiabilities       decimal.NullDecimal `gorm:"type:numeric" json:"otherNonCurrentLiabilities"`
	TotalNonCurrentLiabilities       decimal.NullDecimal `gorm:"type:numeric" json:"totalNonCurrentLiabilities"`
	OtherLiabilities                 decimal.NullDecimal `gorm:"type:numeric" json:"otherLiabilities"`
	CapitalLeaseObligations          decimal.NullDecimal `gorm:"type:numeric" json:"capitalLeaseObligations"`
	TotalLiabilities                 decimal.Decimal     `gorm:"type:numeric;not null" json:"totalLiabilities" fmp:",required"`
	TotalDebt                        decimal.NullDecimal `gorm:"type:numeric" json:"totalDebt"`
	NetDebt                          decimal.NullDecimal `gorm:"type:numeric" json:"netDebt"`

	// Equity
	PreferredStock                          decimal.NullDecimal `gorm:"type:numeric" json:"preferredStock"`
	CommonStock                             decimal.NullDecimal `gorm:"type:numeric" json:"commonStock"`
	RetainedEarnings                        decimal.NullDecimal `gorm:"type:numeric" json:"retainedEarnings"`
	AccumulatedOtherComprehensiveIncomeLoss decimal.NullDecimal `gorm:"type:numeric" json:"accumulatedOtherComprehensiveIncomeLoss"`
	OtherTotalStockholdersEquity            decimal.NullDecimal `gorm:"type:numeric" json:"otherTotalStockholdersEquity"`
	TotalStockholdersEquity                 decimal.NullDecimal `gorm:"type:numeric" json:"totalStockholdersEquity"`
	MinorityInterest                        decimal.NullDecimal `gorm:"type:numeric" json:"minorityInterest"`
	TotalEquity                             decimal.NullDecimal `gorm:"type:numeric" json:"totalEquity"`
	TotalLiabilitiesAndStockholdersEquity   decimal.NullDecimal `gorm:"type:numeric" json:"totalLiabilitiesAndStockholdersEquity"`
	TotalLiabilitiesAndTotalEquity          decimal.NullDecimal `gorm:"type:numeric" json:"totalLiabilitiesAndTotalEquity"`
}

func (BalanceSheetStatement) TableName() string {
	return "balance_sheet_statements"
}
