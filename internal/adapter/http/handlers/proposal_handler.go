package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "service_engine_x/internal/adapter/http/dto/request"
	response "service_engine_x/internal/adapter/http/dto/response"
	"service_engine_x/internal/adapter/http/middleware"
	"service_engine_x/internal/usecase"
	"service_engine_x/pkg"

	"github.com/gin-gonic/gin"
)

// ProposalHandler handles proposal lifecycle requests, the public signing
// surface, and the e-signature webhook.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) Create(c *gin.Context) {
	var payload request.CreateProposalRequest
	if !bindJSON(c, &payload) {
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), middleware.OrgID(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProposal(p))
}

func (h *ProposalHandler) Get(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

func (h *ProposalHandler) List(c *gin.Context) {
	q := pkg.ParseListQuery(c.Request.URL.Query(), usecase.ProposalSortable, usecase.ProposalFilterable, "created_at")
	list, total, err := h.usecase.List(c.Request.Context(), middleware.OrgID(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.NewPaginated(response.FromProposals(list), total, q.Page, q.Limit, c.Request.URL.Path))
}

func (h *ProposalHandler) Send(c *gin.Context) {
	p, err := h.usecase.Send(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

func (h *ProposalHandler) Sign(c *gin.Context) {
	var payload request.SignProposalRequest
	if !bindJSON(c, &payload) {
		return
	}

	result, err := h.usecase.Sign(c.Request.Context(), middleware.OrgID(c), c.Param("id"),
		payload.ToInput(c.ClientIP(), c.Request.UserAgent()))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromConversion(result))
}

func (h *ProposalHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.OrgID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPublic serves the hosted signing page data. Drafts are invisible here.
func (h *ProposalHandler) GetPublic(c *gin.Context) {
	p, err := h.usecase.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(p))
}

// SignPublic accepts a signature from the hosted signing page.
func (h *ProposalHandler) SignPublic(c *gin.Context) {
	var payload request.SignProposalRequest
	if !bindJSON(c, &payload) {
		return
	}

	result, err := h.usecase.SignPublic(c.Request.Context(), c.Param("id"),
		payload.ToInput(c.ClientIP(), c.Request.UserAgent()))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromConversion(result))
}

// DocumensoWebhook converts a proposal when the e-signature provider reports
// completion. Replays for an already-signed proposal are acknowledged.
func (h *ProposalHandler) DocumensoWebhook(c *gin.Context) {
	var payload request.DocumensoWebhookRequest
	if !bindJSON(c, &payload) {
		return
	}
	if payload.Event != "DOCUMENT_COMPLETED" && payload.Event != "document.completed" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	sig := usecase.SignatureInput{SignerIP: c.ClientIP()}
	if len(payload.Payload.Recipients) > 0 {
		sig.SignerName = payload.Payload.Recipients[0].Name
		sig.SignerEmail = payload.Payload.Recipients[0].Email
	}

	documentID := strconv.FormatInt(payload.Payload.ID, 10)
	result, err := h.usecase.HandleSignatureEvent(c.Request.Context(), documentID, sig)
	if err != nil {
		if errors.Is(err, usecase.ErrProposalNotFound) {
			// Unknown document: acknowledge so the provider stops retrying.
			c.JSON(http.StatusOK, gin.H{"status": "unknown_document"})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromConversion(result))
}
