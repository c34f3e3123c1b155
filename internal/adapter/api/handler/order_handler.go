package handler

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/domain/repository"
	"marketadmin/internal/usecase"
	"marketadmin/pkg/response"
	"marketadmin/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	filter := repository.OrderFilter{
		Status:   c.QueryParam("status"),
		VendorID: c.QueryParam("vendor_id"),
		BuyerID:  c.QueryParam("buyer_id"),
	}

	orders, total, err := h.orderUseCase.List(c.Request().Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}

func (h *OrderHandler) GetByID(c echo.Context) error {
	detail, err := h.orderUseCase.GetDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

func (h *OrderHandler) StatusSummary(c echo.Context) error {
	summary, err := h.orderUseCase.StatusSummary(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}
