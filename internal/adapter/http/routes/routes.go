package routes

import (
	"log"
	"os"
	"strconv"

	_ "service_engine_x/docs" // generated swagger docs
	"service_engine_x/internal/adapter/http/handlers"
	"service_engine_x/internal/adapter/http/middleware"
	"service_engine_x/internal/adapter/persistence/repository"
	"service_engine_x/internal/auth"
	"service_engine_x/internal/infrastructure/database"
	"service_engine_x/internal/infrastructure/documents"
	"service_engine_x/internal/infrastructure/email"
	"service_engine_x/internal/infrastructure/payments"
	"service_engine_x/internal/usecase"
	"service_engine_x/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	s3Client := database.ConnectS3()

	proposalRepo := repository.NewProposalDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	engagementRepo := repository.NewEngagementDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	orderTaskRepo := repository.NewOrderTaskDynamoRepository(ddb)
	orderMessageRepo := repository.NewOrderMessageDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	serviceRepo := repository.NewServiceDynamoRepository(ddb)
	ticketRepo := repository.NewTicketDynamoRepository(ddb)
	conversationRepo := repository.NewConversationDynamoRepository(ddb)
	accountRepo := repository.NewAccountDynamoRepository(ddb)
	contactRepo := repository.NewContactDynamoRepository(ddb)
	apiTokenRepo := repository.NewAPITokenDynamoRepository(ddb)
	orgRepo := repository.NewOrganizationDynamoRepository(ddb)

	var renderer interfaces.IPDFRenderer
	if r, err := documents.NewDocRaptorRenderer(os.Getenv("DOCRAPTOR_API_KEY")); err != nil {
		log.Printf("PDF renderer not configured: %v", err)
	} else {
		renderer = r
	}

	storage := documents.NewS3DocumentStorage(s3Client)

	var signatures interfaces.ISignatureGateway
	if g, err := documents.NewDocumensoGateway(os.Getenv("DOCUMENSO_API_KEY"), os.Getenv("DOCUMENSO_BASE_URL")); err != nil {
		log.Printf("Signature gateway not configured: %v", err)
	} else {
		signatures = g
	}

	var checkout interfaces.ICheckoutGateway
	if g, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")); err != nil {
		log.Printf("Checkout gateway not configured: %v", err)
	} else {
		checkout = g
	}

	var emailSender interfaces.IEmailSender
	if s, err := email.NewResendSender(os.Getenv("RESEND_API_KEY")); err != nil {
		log.Printf("Email sender not configured: %v", err)
	} else {
		emailSender = s
	}

	jwtConfig := auth.JWTConfigFromEnv()
	publicBaseURL := os.Getenv("PUBLIC_BASE_URL")
	if publicBaseURL == "" {
		publicBaseURL = "http://localhost:" + strconv.Itoa(defaultPort)
	}

	proposalUC := usecase.NewProposalUseCase(
		proposalRepo, clientRepo, engagementRepo, projectRepo, orderRepo,
		serviceRepo, orgRepo, renderer, storage, signatures, checkout,
		emailSender, publicBaseURL,
	)
	orderUC := usecase.NewOrderUseCase(orderRepo, orderTaskRepo, orderMessageRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	engagementUC := usecase.NewEngagementUseCase(engagementRepo, projectRepo, clientRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, engagementRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	ticketUC := usecase.NewTicketUseCase(ticketRepo, clientRepo)
	conversationUC := usecase.NewConversationUseCase(conversationRepo, clientRepo)
	crmUC := usecase.NewCRMUseCase(accountRepo, contactRepo)
	authUC := usecase.NewAuthUseCase(clientRepo, apiTokenRepo, jwtConfig)
	adminUC := usecase.NewAdminUseCase(orgRepo, serviceUC, proposalUC)

	proposalHandler := handlers.NewProposalHandler(proposalUC)
	orderHandler := handlers.NewOrderHandler(orderUC)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUC)
	clientHandler := handlers.NewClientHandler(clientUC)
	engagementHandler := handlers.NewEngagementHandler(engagementUC)
	projectHandler := handlers.NewProjectHandler(projectUC)
	serviceHandler := handlers.NewServiceHandler(serviceUC)
	ticketHandler := handlers.NewTicketHandler(ticketUC)
	conversationHandler := handlers.NewConversationHandler(conversationUC)
	crmHandler := handlers.NewCRMHandler(crmUC)
	authHandler := handlers.NewAuthHandler(authUC)
	adminHandler := handlers.NewAdminHandler(adminUC)

	addPingRoutes(router.Group(""))

	public := router.Group("/api/public")
	addPublicRoutes(public, authHandler, proposalHandler)

	webhooks := router.Group("/api/webhooks")
	addWebhookRoutes(webhooks, proposalHandler, orderHandler)

	api := router.Group("/api")
	api.Use(middleware.RequireAuth(authUC))
	addAPIRoutes(api, proposalHandler, orderHandler, invoiceHandler, clientHandler,
		engagementHandler, projectHandler, serviceHandler, ticketHandler,
		conversationHandler, crmHandler, authHandler)

	internal := router.Group("/internal")
	internal.Use(middleware.RequireInternalKey())
	addInternalRoutes(internal, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
