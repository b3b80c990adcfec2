package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seo-microservice/internal/pkg/utils"
	"github.com/seo-microservice/internal/usecase"
	"github.com/seo-microservice/internal/usecase/dto"
)

// RegistryHandler serves the merged page registry.
type RegistryHandler struct {
	registryUC *usecase.RegistryUseCase
	logger     *zap.Logger
}

func NewRegistryHandler(registryUC *usecase.RegistryUseCase, logger *zap.Logger) *RegistryHandler {
	return &RegistryHandler{
		registryUC: registryUC,
		logger:     logger,
	}
}

// GetPages godoc
// @Summary Get the merged page registry
// @Description Builds (or serves the cached) registry of every canonical page with indexability, curation flags and traffic counters
// @Tags Pages
// @Accept json
// @Produce json
// @Param refresh query bool false "Bypass the registry cache" default(false)
// @Success 200 {object} utils.SuccessResponse{data=dto.RegistryResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/pages [get]
func (h *RegistryHandler) GetPages(c *fiber.Ctx) error {
	refresh := c.QueryBool("refresh", false)

	start := time.Now()
	pages, fromCache, err := h.registryUC.GetRegistry(c.Context(), refresh)
	if err != nil {
		h.logger.Error("Failed to build registry", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.RegistryResponse{
		Pages:     pages,
		BuiltAtMs: time.Now().UnixMilli(),
		FromCache: fromCache,
	}, &utils.Meta{
		Total:    len(pages),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}
