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

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var payload request.CreateServiceRequest
	if !bindJSON(c, &payload) {
		return
	}

	s, err := h.usecase.Create(c.Request.Context(), middleware.OrgID(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromService(s))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

func (h *ServiceHandler) List(c *gin.Context) {
	q := pkg.ParseListQuery(c.Request.URL.Query(), usecase.ServiceSortable, usecase.ServiceFilterable, "created_at")
	list, total, err := h.usecase.List(c.Request.Context(), middleware.OrgID(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.NewPaginated(response.FromServices(list), total, q.Page, q.Limit, c.Request.URL.Path))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var payload request.UpdateServiceRequest
	if !bindJSON(c, &payload) {
		return
	}

	s, err := h.usecase.Update(c.Request.Context(), middleware.OrgID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(s))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.OrgID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
