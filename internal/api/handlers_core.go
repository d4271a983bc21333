package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ka4a/talentai-sub000/internal/services"
	"gorm.io/gorm"
)

// NewHandler wires the full service graph over one database handle. The
// exchange rate source may be nil, in which case only base-currency salaries
// aggregate.
func NewHandler(database *gorm.DB, secretKey string, exchange services.ExchangeRates) (*Handler, error) {
	handler := &Handler{
		db:        database,
		secretKey: []byte(secretKey),
		exchange:  exchange,
	}
	return handler.withDependencies(database)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
