package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go out as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Generic holds the bookkeeping columns shared by all tables.
type Generic struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (g Generic) RecordID() uint {
	return g.ID
}

// Filing identifies one statement of one company and describes where it came
// from. The (symbol, date) pair is unique within each statement table.
type Filing struct {
	Symbol           string `gorm:"size:10;not null;index:,unique,composite:symbol_date" json:"symbol" fmp:",required"`
	Date             Date   `gorm:"not null;index:,unique,composite:symbol_date" json:"date" fmp:",required"`
	ReportedCurrency string `gorm:"size:10" json:"reportedCurrency" fmp:",recommended"`
	CIK              string `gorm:"size:20" json:"cik"`
	FilingDate       *Date  `json:"filingDate" fmp:"fillingDate|filingDate"`
	AcceptedDate     *Date  `json:"acceptedDate"`
	CalendarYear     string `gorm:"size:4" json:"calendarYear"`
	Period           string `gorm:"size:5" json:"period"`
	Link             string `gorm:"size:255" json:"link"`
	FinalLink        string `gorm:"size:255" json:"finalLink"`
}

func (f Filing) StatementKey() (string, Date) {
	return f.Symbol, f.Date
}

// Statement is implemented by every statement model through its embedded
// Generic and Filing.
type Statement interface {
	RecordID() uint
	StatementKey() (string, Date)
}
