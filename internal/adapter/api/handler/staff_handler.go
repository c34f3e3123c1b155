package handler

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/usecase"
	"marketadmin/pkg/response"
	"marketadmin/pkg/utils"
)

type StaffHandler struct {
	staffUseCase *usecase.StaffUseCase
}

func NewStaffHandler(staffUseCase *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{
		staffUseCase: staffUseCase,
	}
}

type createStaffRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	FullName    string   `json:"full_name" validate:"required"`
	Role        string   `json:"role" validate:"required,oneof=super_admin admin staff"`
	RouteGrants []string `json:"route_grants"`
}

type updateGrantsRequest struct {
	RouteGrants []string `json:"route_grants" validate:"required"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

func (h *StaffHandler) Create(c echo.Context) error {
	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.staffUseCase.Create(c.Request().Context(), usecase.CreateStaffInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		Role:        req.Role,
		RouteGrants: req.RouteGrants,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, admin)
}

func (h *StaffHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	admins, total, err := h.staffUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, admins, total, params.Page, params.PageSize)
}

func (h *StaffHandler) GetByID(c echo.Context) error {
	admin, err := h.staffUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, admin)
}

func (h *StaffHandler) UpdateGrants(c echo.Context) error {
	var req updateGrantsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.staffUseCase.UpdateGrants(c.Request().Context(), c.Param("id"), req.RouteGrants)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, admin)
}

func (h *StaffHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.staffUseCase.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, admin)
}

func (h *StaffHandler) Delete(c echo.Context) error {
	if err := h.staffUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
