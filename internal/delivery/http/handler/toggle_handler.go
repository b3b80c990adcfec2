package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seo-microservice/internal/pkg/errors"
	"github.com/seo-microservice/internal/pkg/utils"
	"github.com/seo-microservice/internal/pkg/validator"
	"github.com/seo-microservice/internal/usecase"
	"github.com/seo-microservice/internal/usecase/dto"
)

// ToggleHandler applies operator publish/indexability toggles.
type ToggleHandler struct {
	toggleUC *usecase.ToggleUseCase
	logger   *zap.Logger
}

func NewToggleHandler(toggleUC *usecase.ToggleUseCase, logger *zap.Logger) *ToggleHandler {
	return &ToggleHandler{
		toggleUC: toggleUC,
		logger:   logger,
	}
}

// Toggle godoc
// @Summary Toggle a page's publish or indexability flag
// @Description Flips the publish state of a listing page or the status/indexable flag of a curated zone page. Requires the operator role header.
// @Tags Pages
// @Accept json
// @Produce json
// @Param X-User-Role header string true "Caller role, must be operator"
// @Param request body dto.ToggleRequest true "Page id and toggle action"
// @Success 200 {object} utils.SuccessResponse{data=dto.ToggleResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/pages/toggle [post]
func (h *ToggleHandler) Toggle(c *fiber.Ctx) error {
	var req dto.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.toggleUC.Toggle(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Info("Page toggled",
		zap.String("page_id", req.ID),
		zap.String("action", req.Action))

	return utils.SendSuccess(c, result, nil)
}
