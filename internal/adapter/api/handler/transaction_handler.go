package handler

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/internal/usecase"
	"marketadmin/pkg/response"
	"marketadmin/pkg/utils"
)

type TransactionHandler struct {
	txnUseCase *usecase.TransactionUseCase
}

func NewTransactionHandler(txnUseCase *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{
		txnUseCase: txnUseCase,
	}
}

type resolveRequest struct {
	Note string `json:"note"`
}

func (h *TransactionHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	filter := repository.TransactionFilter{
		Status:   c.QueryParam("status"),
		VendorID: c.QueryParam("vendor_id"),
	}

	txns, total, err := h.txnUseCase.List(c.Request().Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, txns, total, params.Page, params.PageSize)
}

func (h *TransactionHandler) GetByID(c echo.Context) error {
	txn, err := h.txnUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, txn)
}

func (h *TransactionHandler) Release(c echo.Context) error {
	var req resolveRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	operator := c.Get("admin").(*entity.Admin)

	txn, err := h.txnUseCase.Release(c.Request().Context(), operator.ID, c.Param("id"), req.Note)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, txn)
}

func (h *TransactionHandler) Refund(c echo.Context) error {
	var req resolveRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	operator := c.Get("admin").(*entity.Admin)

	txn, err := h.txnUseCase.Refund(c.Request().Context(), operator.ID, c.Param("id"), req.Note)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, txn)
}
