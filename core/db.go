package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"fundamentals/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

var ErrMissingDBConfig = errors.New("missing database configuration")

// InitDB opens the statement store. The returned handle is safe for
// concurrent use; callers open a transaction per unit of work.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var missing []string
	for name, value := range map[string]string{
		"DB_HOST": cfg.DBHost,
		"DB_USER": cfg.DBUser,
		"DB_NAME": cfg.DBName,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %s", ErrMissingDBConfig, strings.Join(missing, ", "))
	}

	return OpenDB(postgres.Open(cfg.DSN()), cfg.IsProduction())
}

// OpenDB opens a store on any gorm dialector.
func OpenDB(dialector gorm.Dialector, quiet bool) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
	}
	if quiet {
		gormConfig.Logger = logger.Default.LogMode(logger.Error)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	return gorm.Open(dialector, gormConfig)
}

// Migrate creates or updates the statement tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.IncomeStatement{},
		&models.BalanceSheetStatement{},
		&models.CashFlowStatement{},
	)
}
