package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type EquipmentUsecase struct {
	equipmentRepo repo.EquipmentRepository
}

// DI
func NewEquipmentUsecase(equipmentRepo repo.EquipmentRepository) *EquipmentUsecase {
	return &EquipmentUsecase{equipmentRepo: equipmentRepo}
}

// GET /equipmentsの入力DTO
type ListEquipmentsInput struct {
	Page          int
	Limit         int
	Q             string
	Category      string
	AvailableOnly bool
	Sort          string
}

type EquipmentListOutput struct {
	Items []model.Equipment `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

func (u *EquipmentUsecase) ListPublicEquipments(ctx context.Context, in ListEquipmentsInput) (EquipmentListOutput, error) {
	if in.Page < 1 {
		return EquipmentListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return EquipmentListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return EquipmentListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	switch in.Category {
	case "", string(model.CategoryCamera), string(model.CategoryAccessory):
	default:
		return EquipmentListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	switch in.Sort {
	case "", "new", "rate_asc", "rate_desc":
	default:
		return EquipmentListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.equipmentRepo.ListPublic(ctx, repo.EquipmentListQuery{
		Page:          in.Page,
		Limit:         in.Limit,
		Q:             strings.TrimSpace(in.Q),
		Category:      in.Category,
		AvailableOnly: in.AvailableOnly,
		Sort:          in.Sort,
	})
	if err != nil {
		return EquipmentListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return EquipmentListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *EquipmentUsecase) GetEquipmentDetail(ctx context.Context, equipmentID int64) (model.Equipment, error) {
	if equipmentID <= 0 {
		return model.Equipment{}, NewHTTPError(http.StatusBadRequest, "invalid equipment id")
	}

	e, err := u.equipmentRepo.FindByID(ctx, equipmentID)
	if err == repo.ErrNotFound {
		return model.Equipment{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Equipment{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return e, nil
}

type AdminSaveEquipmentInput struct {
	Name        string
	Category    string
	ImageURL    string
	Description string
	Rate12hr    int64
	Rate24hr    int64
	Available   bool
}

func (u *EquipmentUsecase) validateSaveInput(in AdminSaveEquipmentInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	switch in.Category {
	case string(model.CategoryCamera), string(model.CategoryAccessory):
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if in.Rate12hr < 0 {
		return NewHTTPError(http.StatusBadRequest, "rate_12hr must be >= 0")
	}
	if in.Rate24hr < 0 {
		return NewHTTPError(http.StatusBadRequest, "rate_24hr must be >= 0")
	}
	return nil
}

func (u *EquipmentUsecase) AdminCreateEquipment(ctx context.Context, adminUserID int64, in AdminSaveEquipmentInput) (int64, error) {
	if adminUserID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validateSaveInput(in); err != nil {
		return 0, err
	}

	now := time.Now()
	e, err := u.equipmentRepo.Create(ctx, model.Equipment{
		Name:        strings.TrimSpace(in.Name),
		Category:    model.EquipmentCategory(in.Category),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Description: in.Description,
		Rate12hr:    in.Rate12hr,
		Rate24hr:    in.Rate24hr,
		Available:   in.Available,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return e.ID, nil
}

func (u *EquipmentUsecase) AdminUpdateEquipment(ctx context.Context, adminUserID int64, equipmentID int64, in AdminSaveEquipmentInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if equipmentID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid equipment id")
	}
	if err := u.validateSaveInput(in); err != nil {
		return err
	}

	err := u.equipmentRepo.Update(ctx, model.Equipment{
		ID:          equipmentID,
		Name:        strings.TrimSpace(in.Name),
		Category:    model.EquipmentCategory(in.Category),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Description: in.Description,
		Rate12hr:    in.Rate12hr,
		Rate24hr:    in.Rate24hr,
		Available:   in.Available,
		UpdatedAt:   time.Now(),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *EquipmentUsecase) AdminDeleteEquipment(ctx context.Context, adminUserID int64, equipmentID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if equipmentID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid equipment id")
	}

	err := u.equipmentRepo.SoftDelete(ctx, equipmentID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// availableフラグの切り替えだけを行う。他のフィールドは変更しない。
func (u *EquipmentUsecase) AdminSetAvailability(ctx context.Context, adminUserID int64, equipmentID int64, available bool) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if equipmentID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid equipment id")
	}

	err := u.equipmentRepo.SetAvailability(ctx, equipmentID, available)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
