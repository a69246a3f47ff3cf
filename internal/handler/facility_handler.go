package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-booking/internal/domain"
	"campus-booking/internal/middleware"
	"campus-booking/internal/pkg/validation"
	"campus-booking/internal/service/facility"
)

type FacilityHandler struct {
	facilityService facility.Service
}

func NewFacilityHandler(facilityService facility.Service) *FacilityHandler {
	return &FacilityHandler{facilityService: facilityService}
}

func (h *FacilityHandler) List(c *fiber.Ctx) error {
	facilities, err := h.facilityService.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(facilities)
}

func (h *FacilityHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.facilityService.GetByID(c.Context(), id)
	if err != nil {
		if err == facility.ErrFacilityNotFound {
			return middleware.NotFound("Facility not found")
		}
		return err
	}

	return c.JSON(found)
}

func (h *FacilityHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateFacilityInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Validate(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	created, err := h.facilityService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *FacilityHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateFacilityInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Validate(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	updated, err := h.facilityService.Update(c.Context(), id, input)
	if err != nil {
		if err == facility.ErrFacilityNotFound {
			return middleware.NotFound("Facility not found")
		}
		return err
	}

	return c.JSON(updated)
}

func (h *FacilityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.facilityService.Delete(c.Context(), id); err != nil {
		if err == facility.ErrFacilityNotFound {
			return middleware.NotFound("Facility not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *FacilityHandler) UploadImage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return middleware.BadRequest("Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Could not read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	updated, err := h.facilityService.UploadImage(c.Context(), id, fileHeader.Filename, fileHeader.Size, contentType, file)
	if err != nil {
		if err == facility.ErrFacilityNotFound {
			return middleware.NotFound("Facility not found")
		}
		if err == facility.ErrStorageDisabled {
			return middleware.NewError(fiber.StatusServiceUnavailable, "Image storage is not available")
		}
		return err
	}

	return c.JSON(updated)
}
