package controllers

import (
	"context"
	"encoding/json"
	"strings"

	"fundamentals/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Provider is the part of the statement provider the pass-through endpoints
// use.
type Provider interface {
	FetchStatement(ctx context.Context, symbol string, statementType models.StatementType, period models.Period) []json.RawMessage
	FetchAllSymbols(ctx context.Context) []string
}

// ProviderController forwards requests to the provider without touching the
// store. /statement predates the stored statement routes.
type ProviderController struct {
	Provider Provider
	Logger   *zap.SugaredLogger
}

func (pc ProviderController) GetStatement(c *gin.Context) {
	statementType, err := models.ParseStatementType(c.Query("statement-type"))
	if err != nil {
		RespondBadRequestErr(c, err)
		return
	}

	symbol, ok := requireSymbol(c, "company-symbol")
	if !ok {
		return
	}

	period, ok := models.ParsePeriod(c.Query("period"))
	if !ok {
		RespondBadRequestErr(c, ErrInvalidPeriod)
		return
	}

	records := pc.Provider.FetchStatement(c.Request.Context(), symbol, statementType, period)
	if len(records) == 0 {
		pc.Logger.Warnw("Provider returned no statements", "symbol", symbol, "type", statementType, "period", period, "request_id", CurrentRequestID(c))
	}

	RespondOK(c, records)
}

func (pc ProviderController) GetSymbols(c *gin.Context) {
	symbols := pc.Provider.FetchAllSymbols(c.Request.Context())
	if len(symbols) == 0 {
		pc.Logger.Warnw("Provider returned no symbols", "request_id", CurrentRequestID(c))
	}

	if prefix := strings.ToUpper(c.Query("prefix")); prefix != "" {
		filtered := make([]string, 0, len(symbols))
		for _, symbol := range symbols {
			if strings.HasPrefix(symbol, prefix) {
				filtered = append(filtered, symbol)
			}
		}
		symbols = filtered
	}

	RespondOK(c, gin.H{"data": symbols, "total": len(symbols)})
}
