package router

import (
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/config"
	"github.com/angelolorensi/vending-machine-api/internal/handler"
	"github.com/angelolorensi/vending-machine-api/internal/middleware"
	"github.com/angelolorensi/vending-machine-api/internal/repository"
	"github.com/angelolorensi/vending-machine-api/internal/service"
	"github.com/angelolorensi/vending-machine-api/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher, guard service.DayGuard) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	loc := cfg.Location()

	// ── Repositories ─────────────────────────────────────────────────────────
	cardRepo := repository.NewCardRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	machineRepo := repository.NewMachineRepository(db)
	productRepo := repository.NewProductRepository(db)
	classificationRepo := repository.NewClassificationRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	cardSvc := service.NewCardService(cardRepo, employeeRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo, classificationRepo)
	machineSvc := service.NewMachineService(machineRepo, productRepo)
	productSvc := service.NewProductService(productRepo)
	classificationSvc := service.NewClassificationService(classificationRepo)
	transactionSvc := service.NewTransactionService(transactionRepo, loc)
	purchaseSvc := service.NewPurchaseService(cardSvc, machineSvc, cardRepo, machineRepo, transactionRepo, dispatcher, loc)
	rechargeSvc := service.NewRechargeService(employeeRepo, cardRepo, guard)

	// ── Handlers ─────────────────────────────────────────────────────────────
	purchaseH := handler.NewPurchaseHandler(purchaseSvc)
	cardsH := handler.NewCardsHandler(cardSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc, transactionSvc, loc)
	machinesH := handler.NewMachinesHandler(machineSvc)
	productsH := handler.NewProductsHandler(productSvc)
	classificationsH := handler.NewClassificationsHandler(classificationSvc)
	transactionsH := handler.NewTransactionsHandler(transactionSvc)
	rechargeH := handler.NewRechargeHandler(rechargeSvc, loc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/purchases", purchaseH.Purchase)

		v1.GET("/cards/verify/:number", cardsH.Verify)
		v1.POST("/cards", cardsH.Create)
		v1.GET("/cards/:id", cardsH.GetByID)
		v1.POST("/cards/:id/assign", cardsH.Assign)

		v1.POST("/employees", employeesH.Create)
		v1.GET("/employees/:employee_id", employeesH.GetByID)
		v1.GET("/employees/:employee_id/transactions", employeesH.DailyTransactions)
		v1.DELETE("/employees/:employee_id/card", cardsH.Unassign)

		v1.POST("/machines", machinesH.Create)
		v1.GET("/machines", machinesH.List)
		v1.GET("/machines/:id", machinesH.GetByID)
		v1.POST("/machines/fill-slots", machinesH.FillSlots)

		v1.GET("/products", productsH.List)
		v1.GET("/products/:id", productsH.GetByID)
		v1.GET("/product-categories", productsH.ListCategories)

		v1.GET("/classifications", classificationsH.List)
		v1.GET("/classifications/:id", classificationsH.GetByID)

		v1.GET("/transactions", transactionsH.List)
		v1.GET("/transactions/:id", transactionsH.GetByID)

		v1.POST("/recharges/run", rechargeH.Run)
	}

	return r
}
