package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pranshau/Rating-App/internal/application/dto"
	"github.com/Pranshau/Rating-App/internal/application/usecase"
	"github.com/Pranshau/Rating-App/internal/domain"
)

// AdminHandler panel de administración: listados y altas de usuarios y tiendas.
// Todas las rutas van detrás de AuthMiddleware + RequireRole("admin").
type AdminHandler struct {
	userUC  *usecase.UserUseCase
	storeUC *usecase.StoreUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(userUC *usecase.UserUseCase, storeUC *usecase.StoreUseCase) *AdminHandler {
	return &AdminHandler{userUC: userUC, storeUC: storeUC}
}

// ListUsers godoc
// @Summary      Listar usuarios con tienda y promedio (solo admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.userUC.ListAdmin()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(out)
}

// ListStores godoc
// @Summary      Listar tiendas con dueño y promedio (solo admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminStoreListResponse
// @Router       /api/admin/stores [get]
func (h *AdminHandler) ListStores(c *fiber.Ctx) error {
	out, err := h.storeUC.ListAdmin()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(out)
}

// CreateUser godoc
// @Summary      Crear usuario con rol explícito (solo admin)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "name, email, address?, password, role"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.userUC.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "name 4-60, email válido, password 8-16 con mayúscula y especial, role admin|user|owner",
			})
		}
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya existe"})
		}
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"user": out})
}

// CreateStore godoc
// @Summary      Crear tienda, opcionalmente junto con su dueño (solo admin)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "name, address, email?, ownerName?, ownerEmail?, ownerPassword?"
// @Success      200   {object}  dto.CreateStoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/stores [post]
func (h *AdminHandler) CreateStore(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.storeUC.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de tienda o dueño inválidos"})
		}
		if err == domain.ErrEmailAlreadyExists {
			// No se adjunta la tienda a un dueño existente: se rechaza.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OWNER_EMAIL_EXISTS", Message: "el email del dueño ya existe"})
		}
		return serverError(c, err)
	}
	return c.JSON(out)
}
