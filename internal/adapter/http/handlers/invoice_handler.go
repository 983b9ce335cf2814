package handlers

import (
	"net/http"

	request "service_engine_x/internal/adapter/http/dto/request"
	response "service_engine_x/internal/adapter/http/dto/response"
	"service_engine_x/internal/adapter/http/middleware"
	"service_engine_x/internal/usecase"
	"service_engine_x/pkg"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), middleware.OrgID(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) List(c *gin.Context) {
	q := pkg.ParseListQuery(c.Request.URL.Query(), usecase.InvoiceSortable, usecase.InvoiceFilterable, "created_at")
	list, total, err := h.usecase.List(c.Request.Context(), middleware.OrgID(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.NewPaginated(response.FromInvoices(list), total, q.Page, q.Limit, c.Request.URL.Path))
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	var payload request.UpdateInvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}

	inv, err := h.usecase.Update(c.Request.Context(), middleware.OrgID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	inv, err := h.usecase.MarkPaid(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.OrgID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
