package handler

import (
	"net/http"
	"strconv"

	"lensrent/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /equipments の公開API
type EquipmentHandler struct {
	uc *usecase.EquipmentUsecase
}

// DI
func NewEquipmentHandler(uc *usecase.EquipmentUsecase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc}
}

// 公開カタログのルートを登録
func (h *EquipmentHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/equipments", h.list)
	e.GET("/equipments/:id", h.detail)
}

func (h *EquipmentHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 20）
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	q := c.QueryParam("q")
	category := c.QueryParam("category")
	sort := c.QueryParam("sort")

	availableOnly := false
	if v := c.QueryParam("available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid available"})
		}
		availableOnly = b
	}

	out, err := h.uc.ListPublicEquipments(c.Request().Context(), usecase.ListEquipmentsInput{
		Page:          page,
		Limit:         limit,
		Q:             q,
		Category:      category,
		AvailableOnly: availableOnly,
		Sort:          sort,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *EquipmentHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetEquipmentDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
