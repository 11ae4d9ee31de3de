package captcha

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

const defaultEndpoint = "https://www.google.com/recaptcha/api/siteverify"

// Verdict is the verifier's answer for one token. Score is a 0.0-1.0 trust
// estimate; Action tags which form action the token was minted for.
type Verdict struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score"`
	Action  string  `json:"action"`
}

// Verifier calls the external CAPTCHA verification endpoint. Endpoint is
// overridable so tests can point it at a local server.
type Verifier struct {
	Endpoint string
	Secret   string
}

func New(secret string) *Verifier {
	return &Verifier{Endpoint: defaultEndpoint, Secret: secret}
}

// Verify posts the token to the verification endpoint, with the secret and
// token as query parameters, and decodes the verdict. A transport failure or
// non-200 status is an error; interpreting the verdict is the caller's job.
func (v *Verifier) Verify(token string) (*Verdict, error) {
	endpoint := v.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	params := url.Values{}
	params.Set("secret", v.Secret)
	params.Set("response", token)

	agent := fiber.Post(endpoint)
	agent.QueryString(params.Encode())

	var verdict Verdict
	code, _, errs := agent.Struct(&verdict)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("captcha verifier returned status %d", code)
	}
	return &verdict, nil
}
