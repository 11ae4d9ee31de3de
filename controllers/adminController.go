package controllers

import (
	"os"

	"diagnostik-backend/middlewares"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type AdminController struct {
	Store SubmissionStore
}

func NewAdminController(store SubmissionStore) *AdminController {
	return &AdminController{Store: store}
}

type adminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Login compares the password against ADMIN_PASSWORD_HASH (bcrypt) and
// issues a bearer token for the submissions listing.
func (ac *AdminController) Login(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "admin access not configured"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token, err := middlewares.GenerateJWT("admin")
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

func (ac *AdminController) ListSubmissions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	total, err := ac.Store.Count()
	if err != nil {
		return err
	}
	subs, err := ac.Store.List(limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"total":       total,
		"submissions": subs,
	})
}
