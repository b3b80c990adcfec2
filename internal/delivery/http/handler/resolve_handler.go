package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seo-microservice/internal/pkg/utils"
	"github.com/seo-microservice/internal/pkg/validator"
	"github.com/seo-microservice/internal/usecase"
	"github.com/seo-microservice/internal/usecase/dto"
)

// ResolveHandler answers route-resolution queries from the rendering frontend.
type ResolveHandler struct {
	resolveUC *usecase.ResolveUseCase
	logger    *zap.Logger
}

func NewResolveHandler(resolveUC *usecase.ResolveUseCase, logger *zap.Logger) *ResolveHandler {
	return &ResolveHandler{
		resolveUC: resolveUC,
		logger:    logger,
	}
}

// Resolve godoc
// @Summary Resolve a raw request path
// @Description Maps a raw path to its canonical page (status 200) or to a permanent redirect target (status 301). Legacy un-prefixed and close-typo segments redirect instead of rendering in place.
// @Tags Pages
// @Accept json
// @Produce json
// @Param path query string true "Raw request path, e.g. /cazari/cabana/brasov"
// @Success 200 {object} utils.SuccessResponse{data=dto.ResolveResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/pages/resolve [get]
func (h *ResolveHandler) Resolve(c *fiber.Ctx) error {
	req := dto.ResolveRequest{Path: c.Query("path")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.resolveUC.Resolve(c.Context(), req.Path)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
