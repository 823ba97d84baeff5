package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"fundamentals/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// statementHandlers serve one statement type.
type statementHandlers struct {
	read   gin.HandlerFunc
	filter gin.HandlerFunc
	get    gin.HandlerFunc
}

// StatementsController serves stored statements of every type.
type StatementsController struct {
	handlers map[models.StatementType]statementHandlers
}

func NewStatementsController(
	income *models.Repository[models.IncomeStatement],
	balanceSheet *models.Repository[models.BalanceSheetStatement],
	cashFlow *models.Repository[models.CashFlowStatement],
	logger *zap.SugaredLogger,
) *StatementsController {
	return &StatementsController{
		handlers: map[models.StatementType]statementHandlers{
			models.IncomeStatementType:       handlersFor(income, logger),
			models.BalanceSheetStatementType: handlersFor(balanceSheet, logger),
			models.CashFlowStatementType:     handlersFor(cashFlow, logger),
		},
	}
}

func (sc StatementsController) RegisterRoutes(router gin.IRouter) {
	for _, statementType := range models.StatementTypes {
		h, ok := sc.handlers[statementType]
		if !ok {
			continue
		}

		for _, name := range models.StatementTypeAliases(statementType) {
			router.GET("/"+name, h.read)
			router.GET("/"+name+"/filter", h.filter)
			router.GET("/"+name+"/:id", h.get)
		}
	}
}

func handlersFor[T models.Statement](repo *models.Repository[T], logger *zap.SugaredLogger) statementHandlers {
	logger = logger.With("table", repo.Descriptor().Table)

	return statementHandlers{
		read: func(c *gin.Context) {
			symbol, ok := requireSymbol(c, "symbol")
			if !ok {
				return
			}

			page, err := intQuery(c, "page", 1)
			if err != nil {
				RespondBadRequestErr(c, ErrInvalidPage)
				return
			}

			pageSize, err := intQuery(c, "pageSize", models.DefaultPageSize)
			if err != nil {
				RespondBadRequestErr(c, ErrInvalidPage)
				return
			}

			result, err := repo.Read(c.Request.Context(), symbol, page, pageSize)
			if err != nil {
				logger.Errorw("Error reading statements", "symbol", symbol, "error", err, "request_id", CurrentRequestID(c))
				RespondStoreErr(c, err)
				return
			}

			RespondOK(c, result)
		},

		filter: func(c *gin.Context) {
			symbol, ok := requireSymbol(c, "symbol")
			if !ok {
				return
			}

			filter, err := parseFilter(c, repo.Descriptor())
			if err != nil {
				RespondBadRequestErr(c, err)
				return
			}

			records, err := repo.Filter(c.Request.Context(), symbol, filter)
			if err != nil {
				if !models.IsClientError(err) {
					logger.Errorw("Error filtering statements", "symbol", symbol, "error", err, "request_id", CurrentRequestID(c))
				}
				RespondStoreErr(c, err)
				return
			}

			RespondOK(c, gin.H{
				"data":    records,
				"total":   len(records),
				"message": "Records retrieved successfully",
			})
		},

		get: func(c *gin.Context) {
			id, err := strconv.ParseUint(c.Param("id"), 10, 64)
			if err != nil {
				RespondBadRequestErr(c, ErrInvalidID)
				return
			}

			record, err := repo.Get(c.Request.Context(), uint(id))
			if err != nil {
				RespondStoreErr(c, err)
				return
			}

			RespondOK(c, gin.H{"data": record})
		},
	}
}

func requireSymbol(c *gin.Context, param string) (string, bool) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Query(param)))
	if symbol == "" {
		RespondBadRequestErr(c, ErrSymbolRequired)
		return "", false
	}

	return symbol, true
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, ErrInvalidPage
	}

	return n, nil
}

// parseFilter reads start, end, sortBy, sortOrder and <field>Min / <field>Max
// query parameters.
func parseFilter(c *gin.Context, descriptor *models.Descriptor) (models.Filter, error) {
	filter := models.Filter{
		SortBy:    c.Query("sortBy"),
		SortOrder: c.DefaultQuery("sortOrder", c.Query("order")),
		Values:    map[string]models.ValueRange{},
	}

	var err error
	if filter.Dates.Start, err = dateQuery(c, "start"); err != nil {
		return filter, err
	}
	if filter.Dates.End, err = dateQuery(c, "end"); err != nil {
		return filter, err
	}

	numberKeys := descriptor.NumberKeys()
	known := make(map[string]bool, len(numberKeys))
	for _, key := range numberKeys {
		known[key] = true
	}

	for param := range c.Request.URL.Query() {
		key, ok := strings.CutSuffix(param, "Min")
		if !ok {
			key, ok = strings.CutSuffix(param, "Max")
		}
		if ok && !known[key] {
			return filter, fmt.Errorf("%w: %s", models.ErrUnknownField, key)
		}
	}

	for _, key := range numberKeys {
		lower, err := decimalQuery(c, key+"Min")
		if err != nil {
			return filter, err
		}

		upper, err := decimalQuery(c, key+"Max")
		if err != nil {
			return filter, err
		}

		if lower != nil || upper != nil {
			filter.Values[key] = models.ValueRange{Min: lower, Max: upper}
		}
	}

	return filter, nil
}

func dateQuery(c *gin.Context, key string) (*models.Date, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}

	date, err := models.ParseDate(s)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &date, nil
}

func decimalQuery(c *gin.Context, key string) (*decimal.Decimal, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, ErrInvalidRange
	}

	return &d, nil
}
