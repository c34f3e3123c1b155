package handler

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/infrastructure/firebase"
	"marketadmin/pkg/errors"
	"marketadmin/pkg/response"
)

// DevTokenHandler mints HMAC tokens for local development. It is only
// registered when ENVIRONMENT=development.
type DevTokenHandler struct {
	secret string
	expiry int64
}

func NewDevTokenHandler(secret string, expiry int64) *DevTokenHandler {
	return &DevTokenHandler{
		secret: secret,
		expiry: expiry,
	}
}

type devTokenRequest struct {
	UID string `json:"uid" validate:"required"`
}

func (h *DevTokenHandler) Generate(c echo.Context) error {
	var req devTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := firebase.GenerateDevToken(req.UID, h.secret, h.expiry)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to generate dev token", err))
	}

	return response.Success(c, map[string]string{"token": token})
}
