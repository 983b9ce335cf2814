package handlers

import (
	"net/http"

	request "service_engine_x/internal/adapter/http/dto/request"
	response "service_engine_x/internal/adapter/http/dto/response"
	"service_engine_x/internal/adapter/http/middleware"
	"service_engine_x/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if !bindJSON(c, &payload) {
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLogin(result))
}

// CreateAPIToken mints an opaque token. The raw value appears only in this
// response.
func (h *AuthHandler) CreateAPIToken(c *gin.Context) {
	var payload request.CreateAPITokenRequest
	if !bindJSON(c, &payload) {
		return
	}

	minted, err := h.usecase.MintAPIToken(c.Request.Context(), middleware.OrgID(c), middleware.UserID(c), payload.Name, payload.ExpiresAt)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMintedToken(minted))
}
