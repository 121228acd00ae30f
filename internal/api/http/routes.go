package httpapi

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cityweather/internal/weather"
)

var validate = validator.New()

// searchTimeout bounds one resolve+fetch flow triggered by a request.
const searchTimeout = 30 * time.Second

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		return c.JSON(renderStatus(service.Status()))
	})

	v1.Get("/weather/search", func(c *fiber.Ctx) error {
		var q searchQuery
		q.Query = c.Query("q")
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		status := service.Search(ctx, q.Query)
		return c.JSON(renderStatus(status))
	})
}

// searchQuery holds the query parameters of the search endpoint.
type searchQuery struct {
	Query string `validate:"required"`
}
