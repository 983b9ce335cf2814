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

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var payload request.CreateClientRequest
	if !bindJSON(c, &payload) {
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), middleware.OrgID(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) List(c *gin.Context) {
	q := pkg.ParseListQuery(c.Request.URL.Query(), usecase.ClientSortable, usecase.ClientFilterable, "created_at")
	list, total, err := h.usecase.List(c.Request.Context(), middleware.OrgID(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.NewPaginated(response.FromClients(list), total, q.Page, q.Limit, c.Request.URL.Path))
}

func (h *ClientHandler) Update(c *gin.Context) {
	var payload request.UpdateClientRequest
	if !bindJSON(c, &payload) {
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), middleware.OrgID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.OrgID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
