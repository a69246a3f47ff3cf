package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campus-booking/internal/domain"
	"campus-booking/internal/middleware"
	"campus-booking/internal/pkg/validation"
	"campus-booking/internal/service/booking"
)

type BookingHandler struct {
	bookingService booking.Service
}

func NewBookingHandler(bookingService booking.Service) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateBookingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Validate(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	created, err := h.bookingService.Create(c.Context(), userID, input)
	if err != nil {
		if err == booking.ErrFacilityNotFound {
			return middleware.NotFound("Facility not found")
		}
		if err == booking.ErrInvalidTimeRange {
			return middleware.BadRequest("End time must be after start time")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	bookings, err := h.bookingService.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(bookings)
}

func (h *BookingHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateBookingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Validate(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	updated, err := h.bookingService.Update(c.Context(), id, userID, input)
	if err != nil {
		return mapBookingError(err)
	}

	return c.JSON(updated)
}

func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookingService.Delete(c.Context(), id, userID); err != nil {
		return mapBookingError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *BookingHandler) ListAll(c *fiber.Ctx) error {
	var status *domain.BookingStatus
	if raw := c.Query("status"); raw != "" {
		parsed := domain.BookingStatus(raw)
		if !parsed.IsValid() {
			return middleware.BadRequest("Invalid status filter")
		}
		status = &parsed
	}

	result, err := h.bookingService.List(c.Context(), status, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func (h *BookingHandler) Approve(c *fiber.Ctx) error {
	return h.review(c, h.bookingService.Approve)
}

func (h *BookingHandler) Reject(c *fiber.Ctx) error {
	return h.review(c, h.bookingService.Reject)
}

type reviewFunc func(ctx context.Context, id, reviewerID uuid.UUID, notes *string, meta *booking.RequestMeta) error

func (h *BookingHandler) review(c *fiber.Ctx, decide reviewFunc) error {
	reviewerID := middleware.GetCurrentUserID(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.ReviewBookingInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
		if err := validation.Validate(input); err != nil {
			return middleware.BadRequest(err.Error())
		}
	}

	meta := &booking.RequestMeta{
		IPAddress: middleware.GetRequestIP(c),
		UserAgent: middleware.GetRequestUserAgent(c),
	}

	if err := decide(c.Context(), id, reviewerID, input.Notes, meta); err != nil {
		return mapBookingError(err)
	}

	return c.JSON(fiber.Map{
		"message": "Booking review recorded",
	})
}

func mapBookingError(err error) error {
	switch err {
	case booking.ErrBookingNotFound:
		return middleware.NotFound("Booking not found")
	case booking.ErrNotOwner, booking.ErrNotPending:
		return middleware.Forbidden("Booking can only be changed by its owner while pending")
	case booking.ErrNotAdmin:
		return middleware.Forbidden("Insufficient permissions to review booking")
	case booking.ErrInvalidTimeRange:
		return middleware.BadRequest("End time must be after start time")
	default:
		return err
	}
}
