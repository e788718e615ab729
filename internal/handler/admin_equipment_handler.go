package handler

import (
	"net/http"
	"strconv"

	"lensrent/internal/config"
	"lensrent/internal/middleware"
	"lensrent/internal/repository"
	"lensrent/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SuccessResponse は Success { message: string } の形。
type SuccessResponse struct {
	Message string `json:"message"`
}

type EquipmentSaveRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Rate12hr    int64  `json:"rate_12hr"`
	Rate24hr    int64  `json:"rate_24hr"`
	Available   bool   `json:"available"`
}

type AvailabilityRequest struct {
	Available bool `json:"available"`
}

type EquipmentCreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// /admin/equipments（admin専用）
type AdminEquipmentHandler struct {
	uc *usecase.EquipmentUsecase
}

// DI
func NewAdminEquipmentHandler(uc *usecase.EquipmentUsecase) *AdminEquipmentHandler {
	return &AdminEquipmentHandler{uc: uc}
}

// adminを登録
func (h *AdminEquipmentHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	admin := e.Group("/admin/equipments")

	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.TokenVersionGuard(userRepo))
	admin.Use(middleware.AdminRoleGuard())

	admin.POST("", h.createEquipment)
	admin.PUT("/:id", h.updateEquipment)
	admin.DELETE("/:id", h.deleteEquipment)
	admin.PATCH("/:id/availability", h.setAvailability)
}

func (h *AdminEquipmentHandler) createEquipment(c echo.Context) error {
	var req EquipmentSaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := h.uc.AdminCreateEquipment(
		c.Request().Context(),
		adminID,
		usecase.AdminSaveEquipmentInput{
			Name:        req.Name,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
			Description: req.Description,
			Rate12hr:    req.Rate12hr,
			Rate24hr:    req.Rate24hr,
			Available:   req.Available,
		},
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, EquipmentCreatedResponse{ID: id, Message: "created"})
}

func (h *AdminEquipmentHandler) updateEquipment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req EquipmentSaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	err = h.uc.AdminUpdateEquipment(
		c.Request().Context(),
		adminID,
		id,
		usecase.AdminSaveEquipmentInput{
			Name:        req.Name,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
			Description: req.Description,
			Rate12hr:    req.Rate12hr,
			Rate24hr:    req.Rate24hr,
			Available:   req.Available,
		},
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminEquipmentHandler) deleteEquipment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.AdminDeleteEquipment(c.Request().Context(), adminID, id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

// レンタル可否フラグだけの更新
func (h *AdminEquipmentHandler) setAvailability(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.AdminSetAvailability(c.Request().Context(), adminID, id, req.Available); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "availability updated"})
}

//middleware.AuthJWT が c.Set("user_id", int64) した値を取り出す

func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get("user_id")
	if v == nil {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}
