package routes

import (
	"net/http"

	"service_engine_x/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// addPublicRoutes is the unauthenticated surface: login and the hosted
// proposal signing page.
func addPublicRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, proposalHandler *handlers.ProposalHandler) {
	rg.POST("/login", authHandler.Login)
	rg.GET("/proposals/:id", proposalHandler.GetPublic)
	rg.POST("/proposals/:id/sign", proposalHandler.SignPublic)
}

func addWebhookRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler, orderHandler *handlers.OrderHandler) {
	rg.POST("/documenso", proposalHandler.DocumensoWebhook)
	rg.POST("/payments", orderHandler.PaymentWebhook)
}

func addAPIRoutes(
	rg *gin.RouterGroup,
	proposalHandler *handlers.ProposalHandler,
	orderHandler *handlers.OrderHandler,
	invoiceHandler *handlers.InvoiceHandler,
	clientHandler *handlers.ClientHandler,
	engagementHandler *handlers.EngagementHandler,
	projectHandler *handlers.ProjectHandler,
	serviceHandler *handlers.ServiceHandler,
	ticketHandler *handlers.TicketHandler,
	conversationHandler *handlers.ConversationHandler,
	crmHandler *handlers.CRMHandler,
	authHandler *handlers.AuthHandler,
) {
	proposals := rg.Group("/proposals")
	{
		proposals.POST("", proposalHandler.Create)
		proposals.GET("", proposalHandler.List)
		proposals.GET("/:id", proposalHandler.Get)
		proposals.POST("/:id/send", proposalHandler.Send)
		proposals.POST("/:id/sign", proposalHandler.Sign)
		proposals.DELETE("/:id", proposalHandler.Delete)
	}

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.PATCH("/:id", orderHandler.Update)
		orders.DELETE("/:id", orderHandler.Delete)
		orders.POST("/:id/tasks", orderHandler.CreateTask)
		orders.GET("/:id/tasks", orderHandler.ListTasks)
		orders.POST("/:id/messages", orderHandler.CreateMessage)
		orders.GET("/:id/messages", orderHandler.ListMessages)
	}
	rg.POST("/order-tasks/:task_id/complete", orderHandler.CompleteTask)
	rg.DELETE("/order-tasks/:task_id", orderHandler.DeleteTask)
	rg.DELETE("/order-messages/:message_id", orderHandler.DeleteMessage)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PATCH("/:id", invoiceHandler.Update)
		invoices.POST("/:id/pay", invoiceHandler.MarkPaid)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	clients := rg.Group("/clients")
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.Get)
		clients.PATCH("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	engagements := rg.Group("/engagements")
	{
		engagements.POST("", engagementHandler.Create)
		engagements.GET("", engagementHandler.List)
		engagements.GET("/:id", engagementHandler.Get)
		engagements.GET("/:id/projects", engagementHandler.ListProjects)
		engagements.PATCH("/:id", engagementHandler.Update)
	}

	projects := rg.Group("/projects")
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.List)
		projects.GET("/:id", projectHandler.Get)
		projects.PATCH("/:id", projectHandler.Update)
	}

	services := rg.Group("/services")
	{
		services.POST("", serviceHandler.Create)
		services.GET("", serviceHandler.List)
		services.GET("/:id", serviceHandler.Get)
		services.PATCH("/:id", serviceHandler.Update)
		services.DELETE("/:id", serviceHandler.Delete)
	}

	tickets := rg.Group("/tickets")
	{
		tickets.POST("", ticketHandler.Create)
		tickets.GET("", ticketHandler.List)
		tickets.GET("/:id", ticketHandler.Get)
		tickets.PATCH("/:id", ticketHandler.Update)
		tickets.DELETE("/:id", ticketHandler.Delete)
	}

	conversations := rg.Group("/conversations")
	{
		conversations.POST("", conversationHandler.Create)
		conversations.GET("", conversationHandler.List)
		conversations.GET("/:id", conversationHandler.Get)
		conversations.PATCH("/:id", conversationHandler.Update)
		conversations.DELETE("/:id", conversationHandler.Delete)
	}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", crmHandler.CreateAccount)
		accounts.GET("", crmHandler.ListAccounts)
		accounts.GET("/:id", crmHandler.GetAccount)
		accounts.PATCH("/:id", crmHandler.UpdateAccount)
		accounts.DELETE("/:id", crmHandler.DeleteAccount)
	}

	contacts := rg.Group("/contacts")
	{
		contacts.POST("", crmHandler.CreateContact)
		contacts.GET("", crmHandler.ListContacts)
		contacts.GET("/:id", crmHandler.GetContact)
		contacts.PATCH("/:id", crmHandler.UpdateContact)
		contacts.DELETE("/:id", crmHandler.DeleteContact)
	}

	rg.POST("/tokens", authHandler.CreateAPIToken)
}

func addInternalRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	orgs := rg.Group("/organizations")
	{
		orgs.POST("", adminHandler.CreateOrganization)
		orgs.GET("", adminHandler.ListOrganizations)
		orgs.GET("/:id", adminHandler.GetOrganization)
		orgs.POST("/:id/services", adminHandler.CreateService)
	}
	rg.POST("/proposals", adminHandler.CreateProposal)
}
