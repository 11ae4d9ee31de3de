package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"diagnostik-backend/captcha"
	"diagnostik-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User-facing messages. The duplicate message is shared between the soft
// pre-check and the constraint-violation path so clients cannot tell a
// straight duplicate from a lost insert race.
const (
	MsgInvalidEmail   = "Invalid email address."
	MsgBlockedDomain  = "Please use a professional email address."
	MsgCaptchaFailed  = "Security verification failed. Please try again."
	MsgDuplicateEmail = "We've already received a submission from this email address."
	MsgInternalError  = "Internal server error"
	MsgMethodNotAllow = "Method not allowed"
)

// SubmissionStore is the persistence surface the submission pipeline needs.
type SubmissionStore interface {
	FindByEmail(email string) (*models.Submission, error)
	Insert(sub *models.Submission) error
	List(limit, offset int) ([]models.Submission, error)
	Count() (int64, error)
}

// CaptchaVerifier checks one token against the external verification service.
type CaptchaVerifier interface {
	Verify(token string) (*captcha.Verdict, error)
}

type SubmissionController struct {
	Store   SubmissionStore
	Captcha CaptchaVerifier
}

func NewSubmissionController(store SubmissionStore, verifier CaptchaVerifier) *SubmissionController {
	return &SubmissionController{Store: store, Captcha: verifier}
}

type submissionRequest struct {
	CaptchaToken string            `json:"captchaToken"`
	Honeypot     string            `json:"honeypot"`
	FormData     map[string]string `json:"formData"`
}

// Handle runs the submission gates top to bottom; the first failing gate
// short-circuits. Nothing is written before the final insert, so no rollback
// is ever needed.
func (sc *SubmissionController) Handle(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": MsgMethodNotAllow})
	}

	var req submissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": MsgInvalidEmail})
	}

	// A filled honeypot means a bot. Answer with the normal success body and
	// write nothing, so the bot has no signal it was caught.
	if req.Honeypot != "" {
		return c.JSON(fiber.Map{"success": true})
	}

	email := req.FormData["user_email"]
	at := strings.Index(email, "@")
	if at < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": MsgInvalidEmail})
	}

	domain := strings.ToLower(email[at+1:])
	if domainBlocked(domain) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": MsgBlockedDomain})
	}

	verdict, err := sc.Captcha.Verify(req.CaptchaToken)
	if err != nil {
		log.Printf("captcha verification error: %v", err)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": MsgCaptchaFailed})
	}
	if !verdict.Success || verdict.Score < 0.5 || verdict.Action != "submit" {
		log.Printf("captcha rejected: success=%t score=%.3f action=%q", verdict.Success, verdict.Score, verdict.Action)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": MsgCaptchaFailed})
	}

	// Soft duplicate check. Saves a doomed insert in the common case; the
	// unique index below is the authoritative guard.
	if _, err := sc.Store.FindByEmail(email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": MsgDuplicateEmail})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("submission lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": MsgInternalError})
	}

	fields, err := json.Marshal(req.FormData)
	if err != nil {
		log.Printf("form data marshal failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": MsgInternalError})
	}

	sub := models.Submission{
		UserEmail: email,
		Fields:    datatypes.JSON(fields),
	}
	if err := sc.Store.Insert(&sub); err != nil {
		// Two concurrent requests can both pass the soft check; the unique
		// index rejects the loser and it gets the same conflict answer.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": MsgDuplicateEmail})
		}
		log.Printf("submission insert failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": MsgInternalError})
	}

	return c.JSON(fiber.Map{"success": true})
}
