package handlers

import (
	"dwallet/internal/services/auth"
	"dwallet/internal/services/user"
	"dwallet/internal/utils/response"
	"dwallet/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
	authService auth.Service
}

func NewUserHandler(userService user.Service, authService auth.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=USER AGENT"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a user account. USER and AGENT accounts get their wallet
// provisioned synchronously.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input registerRequest
	if err := validation.ParseAndValidate(c, &input); err != nil {
		return err
	}

	u, err := h.userService.Register(c.Context(), user.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "User registered successfully", u)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input loginRequest
	if err := validation.ParseAndValidate(c, &input); err != nil {
		return err
	}

	token, u, err := h.authService.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Login successful", fiber.Map{
		"token": token,
		"user":  u,
	})
}
