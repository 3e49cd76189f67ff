package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pranshau/Rating-App/internal/application/dto"
	"github.com/Pranshau/Rating-App/internal/application/usecase"
	"github.com/Pranshau/Rating-App/internal/domain"
)

// OwnerHandler dashboard del dueño: sus tiendas, las calificaciones recibidas
// y el reporte PDF. Todas las rutas van detrás de AuthMiddleware +
// RequireRole("owner").
type OwnerHandler struct {
	storeUC  *usecase.StoreUseCase
	ratingUC *usecase.RatingUseCase
	reportUC *usecase.ReportUseCase
}

// NewOwnerHandler construye el handler.
func NewOwnerHandler(storeUC *usecase.StoreUseCase, ratingUC *usecase.RatingUseCase, reportUC *usecase.ReportUseCase) *OwnerHandler {
	return &OwnerHandler{storeUC: storeUC, ratingUC: ratingUC, reportUC: reportUC}
}

// ListStores godoc
// @Summary      Tiendas del dueño en sesión, con conteo y promedio
// @Tags         owner
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OwnedStoreRow
// @Router       /api/owner/stores [get]
func (h *OwnerHandler) ListStores(c *fiber.Ctx) error {
	out, err := h.storeUC.ListByOwner(GetUserID(c))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(out)
}

// ListRatings godoc
// @Summary      Calificaciones de una tienda del dueño, más reciente primero
// @Tags         owner
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.StoreRatingRow
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/owner/stores/{id}/ratings [get]
func (h *OwnerHandler) ListRatings(c *fiber.Ctx) error {
	out, err := h.ratingUC.ListForOwner(GetUserID(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la tienda no pertenece a este dueño"})
		}
		return serverError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de calificaciones de una tienda del dueño
// @Tags         owner
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la tienda"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/owner/stores/{id}/report [get]
func (h *OwnerHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.BuildStoreReport(GetUserID(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la tienda no pertenece a este dueño"})
		}
		if err == domain.ErrStoreNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return serverError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ratings-report.pdf"`)
	return c.Send(pdfBytes)
}
