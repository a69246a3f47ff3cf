package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-booking/internal/domain"
	"campus-booking/internal/middleware"
	"campus-booking/internal/pkg/validation"
	"campus-booking/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	current := middleware.GetCurrentUser(c)
	if current == nil {
		return middleware.Unauthorized("User not found")
	}

	return c.JSON(fiber.Map{
		"user":       current,
		"navigation": domain.NavigationForRole(current.Role),
	})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Validate(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	updated, err := h.userService.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		if err == user.ErrUserNotFound {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.JSON(updated)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Validate(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	if err := h.userService.ChangePassword(c.Context(), userID, input); err != nil {
		if err == user.ErrWrongPassword {
			return middleware.Unauthorized("Current password is incorrect")
		}
		if err == user.ErrUserNotFound {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Password updated successfully",
	})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	result, err := h.userService.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		if err == user.ErrUserNotFound {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.JSON(found)
}

func (h *UserHandler) AdminUpdate(c *fiber.Ctx) error {
	adminID := middleware.GetCurrentUserID(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.AdminUpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Validate(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	updated, err := h.userService.AdminUpdate(c.Context(), adminID, id, input)
	if err != nil {
		if err == user.ErrCannotModifySelf {
			return middleware.Forbidden("Cannot change your own role")
		}
		if err == user.ErrUserNotFound {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.JSON(updated)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	adminID := middleware.GetCurrentUserID(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Context(), adminID, id); err != nil {
		if err == user.ErrCannotModifySelf {
			return middleware.Forbidden("Cannot delete your own account")
		}
		if err == user.ErrUserNotFound {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
