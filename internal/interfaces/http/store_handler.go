package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pranshau/Rating-App/internal/application/dto"
	"github.com/Pranshau/Rating-App/internal/application/usecase"
	"github.com/Pranshau/Rating-App/internal/domain"
)

// StoreHandler maneja el listado público de tiendas y el envío de calificaciones.
type StoreHandler struct {
	storeUC  *usecase.StoreUseCase
	ratingUC *usecase.RatingUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(storeUC *usecase.StoreUseCase, ratingUC *usecase.RatingUseCase) *StoreHandler {
	return &StoreHandler{storeUC: storeUC, ratingUC: ratingUC}
}

// List godoc
// @Summary      Listar tiendas (público, sesión opcional)
// @Tags         stores
// @Produce      json
// @Param        name       query  string  false  "filtro substring por nombre"
// @Param        address    query  string  false  "filtro substring por dirección"
// @Param        sortField  query  string  false  "id|name|address|created_at (otro valor cae a id)"
// @Param        sortOrder  query  string  false  "asc|desc (otro valor cae a asc)"
// @Success      200  {object}  dto.StoreListResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	var q dto.ListStoresQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	// callerID vacío = anónimo: user_rating llega null en todas las filas.
	out, err := h.storeUC.List(q, GetUserID(c))
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(out)
}

// SubmitRating godoc
// @Summary      Calificar una tienda (1-5); reenviar sobreescribe la calificación previa
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la tienda"
// @Param        body  body  dto.SubmitRatingRequest true  "rating 1..5"
// @Success      200   {object}  dto.SubmitRatingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/rating [post]
func (h *StoreHandler) SubmitRating(c *fiber.Ctx) error {
	storeID := c.Params("id")
	var in dto.SubmitRatingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	avg, err := h.ratingUC.Submit(GetUserID(c), storeID, in.Rating)
	if err != nil {
		if err == domain.ErrInvalidRating {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rating debe ser un entero entre 1 y 5"})
		}
		if err == domain.ErrStoreNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return serverError(c, err)
	}
	return c.JSON(dto.SubmitRatingResponse{AverageRating: avg})
}
