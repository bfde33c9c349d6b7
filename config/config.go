package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var loadEnv sync.Once

// Config reads a key from .env, falling back to the process environment.
func Config(key string) string {
	loadEnv.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file found, using process environment")
		}
	})
	return os.Getenv(key)
}

// DefaultBonusPercentage is applied when BONUS_PERCENTAGE is unset or malformed.
var DefaultBonusPercentage = decimal.NewFromFloat(2.0)

var (
	bonusOnce sync.Once
	bonusPct  decimal.Decimal
)

// BonusPercentage returns the loyalty accrual percentage, resolved once at startup
// from BONUS_PERCENTAGE.
func BonusPercentage() decimal.Decimal {
	bonusOnce.Do(func() {
		bonusPct = parseBonusPercentage(Config("BONUS_PERCENTAGE"))
	})
	return bonusPct
}

func parseBonusPercentage(raw string) decimal.Decimal {
	if raw == "" {
		return DefaultBonusPercentage
	}
	pct, err := decimal.NewFromString(raw)
	if err != nil || pct.IsNegative() {
		log.Printf("invalid BONUS_PERCENTAGE %q, using default %s", raw, DefaultBonusPercentage)
		return DefaultBonusPercentage
	}
	return pct
}
