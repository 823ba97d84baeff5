package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination describes one page of a symbol's statements.
type Pagination struct {
	Total     int64 `json:"total"`
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	PageCount int   `json:"pageCount"`
}

// Page is the result of Repository.Read.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Message    string     `json:"message"`
}

// Repository stores and retrieves statements of one type. It is the only
// place that maps provider payloads onto stored records.
type Repository[T Statement] struct {
	db         *gorm.DB
	descriptor *Descriptor
	logger     *zap.SugaredLogger
}

func NewRepository[T Statement](db *gorm.DB, logger *zap.SugaredLogger) *Repository[T] {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	descriptor := MustDescribe(new(T))

	return &Repository[T]{
		db:         db,
		descriptor: descriptor,
		logger:     logger.With("table", descriptor.Table),
	}
}

// WithTx returns a repository whose operations run inside tx. Each operation
// still runs in its own savepoint, so a failed write leaves tx usable.
func (r *Repository[T]) WithTx(tx *gorm.DB) *Repository[T] {
	return &Repository[T]{
		db:         tx,
		descriptor: r.descriptor,
		logger:     r.logger,
	}
}

func (r *Repository[T]) Descriptor() *Descriptor {
	return r.descriptor
}

// Create maps a provider payload onto a new record and stores it. Payloads
// missing a required field are rejected before the store is touched. A
// statement that already exists for the same symbol and date is rejected with
// ErrDuplicateStatement and nothing is written.
func (r *Repository[T]) Create(ctx context.Context, raw json.RawMessage) (uint, error) {
	var record T
	warnings, err := r.descriptor.Decode(raw, &record)
	if err != nil {
		return 0, err
	}

	symbol, date := record.StatementKey()
	if len(warnings) > 0 {
		r.logger.Warnw("Data quality warning: missing fields", "symbol", symbol, "date", date.String(), "fields", warnings)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).Where("symbol = ? AND date = ?", symbol, date).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return ErrDuplicateStatement
		}

		return tx.Create(&record).Error
	})
	if err != nil {
		return 0, r.translate(err, symbol, date)
	}

	return record.RecordID(), nil
}

func (r *Repository[T]) translate(err error, symbol string, date Date) error {
	switch {
	case errors.Is(err, ErrDuplicateStatement), errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s %s", ErrDuplicateStatement, symbol, date)
	default:
		return err
	}
}

// Read returns a page of statements for symbol, most recent first. Pages are
// numbered from 1.
func (r *Repository[T]) Read(ctx context.Context, symbol string, page, pageSize int) (*Page[T], error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = DefaultPageSize
	} else if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(new(T)).Where("symbol = ?", symbol).Count(&total).Error; err != nil {
		return nil, err
	}

	records := make([]T, 0, pageSize)
	if offset, ok := pageOffset(page, pageSize, total); ok {
		err := db.Where("symbol = ?", symbol).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}).
			Offset(offset).
			Limit(pageSize).
			Find(&records).Error
		if err != nil {
			return nil, err
		}
	}

	return &Page[T]{
		Data: records,
		Pagination: Pagination{
			Total:     total,
			Page:      page,
			PageSize:  pageSize,
			PageCount: pageCount(total, pageSize),
		},
		Message: "Records retrieved successfully",
	}, nil
}

// pageOffset returns the offset of page, or false when the page starts past
// the last record. Pages too large for an int offset are past the end.
func pageOffset(page, pageSize int, total int64) (int, bool) {
	skipped := int64(page - 1)
	if skipped > (math.MaxInt64-1)/int64(pageSize) {
		return 0, false
	}

	offset := skipped * int64(pageSize)
	if offset >= total || offset > math.MaxInt {
		return 0, false
	}

	return int(offset), true
}

func pageCount(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}

	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// Get returns the statement with the given id.
func (r *Repository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	return &record, nil
}

// Update replaces the given fields of a statement. Fields are named by their
// API keys; fields not supplied are left untouched.
func (r *Repository[T]) Update(ctx context.Context, id uint, fields map[string]any) error {
	columns, err := r.descriptor.Columns(fields)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record T
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		if len(columns) == 0 {
			return nil
		}

		symbol, date := record.StatementKey()
		_, symbolChanged := columns["symbol"]
		_, dateChanged := columns["date"]
		if symbolChanged || dateChanged {
			if v, ok := columns["symbol"].(string); ok {
				symbol = v
			}
			if v, ok := columns["date"].(Date); ok {
				date = v
			}

			var count int64
			err := tx.Model(new(T)).Where("symbol = ? AND date = ? AND id <> ?", symbol, date, id).Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				return r.translate(ErrDuplicateStatement, symbol, date)
			}
		}

		if err := tx.Model(&record).Updates(columns).Error; err != nil {
			return r.translate(err, symbol, date)
		}

		return nil
	})
}

// Delete removes a statement.
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record T
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		return tx.Delete(&record).Error
	})
}
