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

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if !bindJSON(c, &payload) {
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), middleware.OrgID(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) List(c *gin.Context) {
	q := pkg.ParseListQuery(c.Request.URL.Query(), usecase.OrderSortable, usecase.OrderFilterable, "created_at")
	list, total, err := h.usecase.List(c.Request.Context(), middleware.OrgID(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.NewPaginated(response.FromOrders(list), total, q.Page, q.Limit, c.Request.URL.Path))
}

func (h *OrderHandler) Update(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if !bindJSON(c, &payload) {
		return
	}

	o, err := h.usecase.Update(c.Request.Context(), middleware.OrgID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.OrgID(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PaymentWebhook records a payment reported by the checkout provider. The
// handler always answers 200 for known orders so the provider stops retrying.
func (h *OrderHandler) PaymentWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if !bindJSON(c, &payload) {
		return
	}
	orderID := payload.ResolveOrderID()
	orgID := payload.ResolveOrgID()
	if orderID == "" || orgID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing order reference", http.StatusBadRequest).ToHTTPError())
		return
	}

	o, err := h.usecase.HandlePaymentEvent(c.Request.Context(), orgID, orderID, payload.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) CreateTask(c *gin.Context) {
	var payload request.CreateOrderTaskRequest
	if !bindJSON(c, &payload) {
		return
	}

	t, err := h.usecase.CreateTask(c.Request.Context(), middleware.OrgID(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderTask(t))
}

func (h *OrderHandler) ListTasks(c *gin.Context) {
	tasks, err := h.usecase.ListTasks(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": response.FromOrderTasks(tasks)})
}

func (h *OrderHandler) CompleteTask(c *gin.Context) {
	t, err := h.usecase.CompleteTask(c.Request.Context(), middleware.OrgID(c), c.Param("task_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderTask(t))
}

func (h *OrderHandler) DeleteTask(c *gin.Context) {
	if err := h.usecase.DeleteTask(c.Request.Context(), middleware.OrgID(c), c.Param("task_id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) CreateMessage(c *gin.Context) {
	var payload request.CreateOrderMessageRequest
	if !bindJSON(c, &payload) {
		return
	}

	m, err := h.usecase.CreateMessage(c.Request.Context(), middleware.OrgID(c), c.Param("id"), middleware.UserID(c), payload.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderMessage(m))
}

func (h *OrderHandler) ListMessages(c *gin.Context) {
	msgs, err := h.usecase.ListMessages(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": response.FromOrderMessages(msgs)})
}

func (h *OrderHandler) DeleteMessage(c *gin.Context) {
	if err := h.usecase.DeleteMessage(c.Request.Context(), middleware.OrgID(c), c.Param("message_id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
