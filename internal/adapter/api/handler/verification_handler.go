package handler

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/usecase"
	"marketadmin/pkg/response"
	"marketadmin/pkg/utils"
)

type VerificationHandler struct {
	verificationUseCase *usecase.VerificationUseCase
}

func NewVerificationHandler(verificationUseCase *usecase.VerificationUseCase) *VerificationHandler {
	return &VerificationHandler{
		verificationUseCase: verificationUseCase,
	}
}

type reviewRequest struct {
	Note string `json:"note"`
}

func (h *VerificationHandler) ListQueue(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	status := c.QueryParam("status")
	if status == "" {
		status = entity.VerificationStatusPending
	}

	docs, total, err := h.verificationUseCase.ListQueue(c.Request().Context(), status, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, docs, total, params.Page, params.PageSize)
}

func (h *VerificationHandler) GetByID(c echo.Context) error {
	detail, err := h.verificationUseCase.GetDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

func (h *VerificationHandler) Approve(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	operator := c.Get("admin").(*entity.Admin)

	doc, err := h.verificationUseCase.Approve(c.Request().Context(), operator.ID, c.Param("id"), req.Note)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, doc)
}

func (h *VerificationHandler) Reject(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	operator := c.Get("admin").(*entity.Admin)

	doc, err := h.verificationUseCase.Reject(c.Request().Context(), operator.ID, c.Param("id"), req.Note)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, doc)
}
