package handlers

import (
	"net/http"

	request "service_engine_x/internal/adapter/http/dto/request"
	response "service_engine_x/internal/adapter/http/dto/response"
	"service_engine_x/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the operator surface behind the internal key.

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) CreateOrganization(c *gin.Context) {
	var payload request.CreateOrganizationRequest
	if !bindJSON(c, &payload) {
		return
	}

	org, err := h.usecase.CreateOrganization(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrganization(org))
}

func (h *AdminHandler) GetOrganization(c *gin.Context) {
	org, err := h.usecase.GetOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrganization(org))
}

func (h *AdminHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.usecase.ListOrganizations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": response.FromOrganizations(orgs)})
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if !bindJSON(c, &payload) {
		return
	}

	s, err := h.usecase.CreateService(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromService(s))
}

func (h *AdminHandler) CreateProposal(c *gin.Context) {
	var payload request.AdminCreateProposalRequest
	if !bindJSON(c, &payload) {
		return
	}

	p, err := h.usecase.CreateProposal(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProposal(p))
}
