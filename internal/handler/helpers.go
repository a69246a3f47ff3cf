package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campus-booking/internal/domain"
	"campus-booking/internal/middleware"
)

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	if err := c.QueryParser(&params); err == nil {
		params.Validate()
	}
	return params
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid " + name)
	}
	return id, nil
}
