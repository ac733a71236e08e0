package routes

import (
	"log"
	"os"
	"strconv"

	_ "printlite/docs" // This will be auto-generated
	"printlite/internal/adapter/http/handlers"
	"printlite/internal/adapter/persistence/repository"
	"printlite/internal/domain/pricing"
	"printlite/internal/infrastructure/cache"
	"printlite/internal/infrastructure/database"
	"printlite/internal/infrastructure/events"
	"printlite/internal/usecase"
	"printlite/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	orderRepo := buildOrderRepository()

	engine := pricing.NewEngine(pricing.Options{
		BindingPerCopy: os.Getenv("PRICING_BINDING_PER_COPY") == "true",
	})

	var quoteCache interfaces.IQuoteCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		quoteCache = cache.NewRedisQuoteCache(addr)
		log.Printf("[routes] quote cache enabled addr=%s", addr)
	} else {
		log.Printf("[routes] quote cache disabled (REDIS_ADDR unset)")
	}

	var publisher interfaces.IEventPublisher
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		p, err := events.NewPublisher(url, "printlite.orders")
		if err != nil {
			log.Printf("[routes] event publisher not configured: %v", err)
		} else {
			publisher = p
		}
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, engine, publisher)
	quoteUseCase := usecase.NewQuoteUseCase(engine, quoteCache)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPrintingRoutes(v1, orderHandler, quoteHandler)
}

// buildOrderRepository selects the order store. DynamoDB is the default;
// ORDERS_REPOSITORY=memory keeps everything in-process for local runs.
func buildOrderRepository() interfaces.IOrderRepository {
	if os.Getenv("ORDERS_REPOSITORY") == "memory" {
		log.Printf("[routes] using in-memory order repository")
		return repository.NewOrderMemoryRepository()
	}
	return repository.NewOrderDynamoRepository(database.ConnectDynamoDB())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
