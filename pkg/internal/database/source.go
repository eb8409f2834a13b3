package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var C *gorm.DB

func NewGorm() error {
	dialector, err := newDialector(viper.GetString("database.dialect"), viper.GetString("database.dsn"))
	if err != nil {
		return err
	}

	C, err = gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: viper.GetString("database.prefix"),
		},
		Logger: logger.New(&log.Logger, logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			Colorful:      true,
			LogLevel:      lo.Ternary(viper.GetBool("debug.database"), logger.Info, logger.Silent),
		}),
	})
	if err != nil {
		return err
	}

	if dialector.Name() == "sqlite" {
		// Each sqlite connection to an in-memory database sees its own copy.
		raw, err := C.DB()
		if err != nil {
			return err
		}
		raw.SetMaxOpenConns(1)
	}

	return nil
}

func newDialector(dialect, dsn string) (gorm.Dialector, error) {
	switch dialect {
	case "", "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database dialect: %s", dialect)
	}
}
