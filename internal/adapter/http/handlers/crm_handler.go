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

// CRMHandler handles accounts and contacts.

type CRMHandler struct {
	usecase usecase.ICRMUseCase
}

func NewCRMHandler(uc usecase.ICRMUseCase) *CRMHandler {
	return &CRMHandler{usecase: uc}
}

func (h *CRMHandler) CreateAccount(c *gin.Context) {
	var payload request.CreateAccountRequest
	if !bindJSON(c, &payload) {
		return
	}

	a, err := h.usecase.CreateAccount(c.Request.Context(), middleware.OrgID(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAccount(a))
}

func (h *CRMHandler) GetAccount(c *gin.Context) {
	a, err := h.usecase.GetAccount(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAccount(a))
}

func (h *CRMHandler) ListAccounts(c *gin.Context) {
	q := pkg.ParseListQuery(c.Request.URL.Query(), usecase.AccountSortable, usecase.AccountFilterable, "created_at")
	list, total, err := h.usecase.ListAccounts(c.Request.Context(), middleware.OrgID(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.NewPaginated(response.FromAccounts(list), total, q.Page, q.Limit, c.Request.URL.Path))
}

func (h *CRMHandler) UpdateAccount(c *gin.Context) {
	var payload request.UpdateAccountRequest
	if !bindJSON(c, &payload) {
		return
	}

	a, err := h.usecase.UpdateAccount(c.Request.Context(), middleware.OrgID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAccount(a))
}

func (h *CRMHandler) DeleteAccount(c *gin.Context) {
	if err := h.usecase.DeleteAccount(c.Request.Context(), middleware.OrgID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CRMHandler) CreateContact(c *gin.Context) {
	var payload request.CreateContactRequest
	if !bindJSON(c, &payload) {
		return
	}

	contact, err := h.usecase.CreateContact(c.Request.Context(), middleware.OrgID(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromContact(contact))
}

func (h *CRMHandler) GetContact(c *gin.Context) {
	contact, err := h.usecase.GetContact(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContact(contact))
}

func (h *CRMHandler) ListContacts(c *gin.Context) {
	q := pkg.ParseListQuery(c.Request.URL.Query(), usecase.ContactSortable, usecase.ContactFilterable, "created_at")
	list, total, err := h.usecase.ListContacts(c.Request.Context(), middleware.OrgID(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.NewPaginated(response.FromContacts(list), total, q.Page, q.Limit, c.Request.URL.Path))
}

func (h *CRMHandler) UpdateContact(c *gin.Context) {
	var payload request.UpdateContactRequest
	if !bindJSON(c, &payload) {
		return
	}

	contact, err := h.usecase.UpdateContact(c.Request.Context(), middleware.OrgID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContact(contact))
}

func (h *CRMHandler) DeleteContact(c *gin.Context) {
	if err := h.usecase.DeleteContact(c.Request.Context(), middleware.OrgID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
