package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/dto"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/usecase"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/interfaces/ws"
)

// CashHandler maneja las peticiones HTTP del libro de caja (protegido).
// Solo alta y lectura: el libro no expone edición ni borrado.
type CashHandler struct {
	uc  *usecase.CashUseCase
	hub *ws.Hub
}

// NewCashHandler construye el handler.
func NewCashHandler(uc *usecase.CashUseCase, hub *ws.Hub) *CashHandler {
	return &CashHandler{uc: uc, hub: hub}
}

// Append godoc
// @Summary      Asentar movimiento de caja
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppendCashRequest  true  "Movimiento (una corrección es un asiento nuevo con origen ajuste)"
// @Success      201   {object}  dto.CashMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash [post]
func (h *CashHandler) Append(c *fiber.Ctx) error {
	var in dto.AppendCashRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Append(in)
	if err != nil {
		return respondError(c, err)
	}
	h.hub.Publish("caja", "created", out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos de caja
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fin del rango (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.CashListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/cash [get]
func (h *CashHandler) List(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	if from != "" && to != "" {
		start, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, formato YYYY-MM-DD"})
		}
		end, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, formato YYYY-MM-DD"})
		}
		// Fin de rango inclusive: hasta el último instante del día.
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		out, err := h.uc.ListBetween(start, end)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}

	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
