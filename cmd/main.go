package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/api"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/config"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/consumer"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/repository"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
	"github.com/rijanbdahal/SushiBaiKiyoshi/migrations"
)

func connectDB(cfg config.Config) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", cfg.DSN())
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", cfg.DBName)
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, cfg.DBName, cfg.DBHost, cfg.DBPort, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg)
	if err != nil {
		panic(err)
	}

	err = migrations.AutoMigrate(3, db)
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	kafkaWriter := config.NewKafkaWriter(cfg.OrderTopic)
	kafkaReader := config.NewKafkaReader(cfg.OrderTopic, cfg.ConsumerGrp)

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cardRepo := repository.NewCardRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret))
	orderService := service.NewOrderService(orderRepo, prefRepo, kafkaWriter, rdb)
	prefService := service.NewPreferenceService(prefRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	menuService := service.NewMenuService(menuRepo, rdb)
	cardService := service.NewCardService(cardRepo)
	userService := service.NewUserService(userRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	authHandler := api.NewAuthHandler(authService)
	orderHandler := api.NewOrderHandler(orderService)
	inventoryHandler := api.NewInventoryHandler(inventoryService)
	menuHandler := api.NewMenuHandler(menuService)
	cardHandler := api.NewCardHandler(cardService)
	userHandler := api.NewUserHandler(userService)
	analyticsHandler := api.NewAnalyticsHandler(analyticsService, prefService)

	// consumer: order events -> loyalty preference updates
	loyaltyConsumer := consumer.NewConsumer(prefService, kafkaReader)
	go loyaltyConsumer.Start(context.Background())

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     60,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	jwtConfig := echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.JwtCustomClaims)
		},
	}

	e.POST("/loginPage/authenticateUser", authHandler.AuthenticateUser)
	e.POST("/registerUser", authHandler.RegisterUser)

	e.GET("/inventory", inventoryHandler.GetItems)
	e.POST("/inventory", inventoryHandler.AddItem)
	e.PUT("/inventory/:id", inventoryHandler.EditItem)
	e.DELETE("/inventory/:id", inventoryHandler.DeleteItem)

	e.GET("/menuitems", menuHandler.GetMenuItems)
	e.POST("/menuitems", menuHandler.CreateMenuItem)
	e.GET("/menuitems/inventory", menuHandler.GetInventoryOptions)
	e.PUT("/menuitems/:id", menuHandler.UpdateMenuItem)

	e.POST("/handleorder", orderHandler.PlaceOrder)
	e.GET("/handleorder/getItems/:user_id", orderHandler.GetItems)
	e.GET("/handleorder/getAllOrders", orderHandler.GetAllOrders)
	e.PUT("/handleorder/completeOrder/:orderId", orderHandler.CompleteOrder)
	e.PUT("/handleorder/processOrder/:orderId", orderHandler.ProcessOrder)
	e.DELETE("/handleorder/deleteOrder/:order_id", orderHandler.DeleteOrder)
	e.GET("/handleorder/discounts/:user_id", orderHandler.GetDiscounts)

	e.POST("/cards/addCard", cardHandler.AddCard)
	e.PUT("/cards/editCard/:payment_type_id", cardHandler.EditCard)
	e.DELETE("/cards/deleteCard/:payment_type_id", cardHandler.DeleteCard)
	e.GET("/cards/getCards/:userName", cardHandler.GetCards)

	users := e.Group("/users", echojwt.WithConfig(jwtConfig))
	users.GET("/getUsers", userHandler.GetUsers)
	users.PUT("/editUser/:id", userHandler.EditUser)
	users.DELETE("/deleteUser/:id", userHandler.DeleteUser)

	profile := e.Group("/profile", echojwt.WithConfig(jwtConfig))
	profile.GET("/:userId", userHandler.GetProfile)
	profile.PUT("", userHandler.UpdateProfile)

	e.POST("/receivefish", inventoryHandler.ReceiveShipment)
	e.GET("/receivefish/getInventory", inventoryHandler.GetItems)
	e.GET("/receivefish/getReceivedFish", inventoryHandler.GetReceivedShipments)

	e.POST("/supplieraddress", userHandler.AddSupplierAddress)

	e.GET("/analytics/sales/monthly", analyticsHandler.GetMonthlySales)
	e.GET("/analytics/expenses/monthly", analyticsHandler.GetMonthlyExpenses)
	e.GET("/analytics/market-prices", analyticsHandler.GetMarketPrices)
	e.GET("/analytics/customer-preferences", analyticsHandler.GetCustomerPreferences)
	e.GET("/analytics/discount-recommendations", analyticsHandler.GetDiscountRecommendations)
	e.GET("/analytics/sales-trends/:periodType", analyticsHandler.GetSalesTrends)
	e.POST("/analytics/update-preferences", analyticsHandler.UpdatePreferences)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "restaurant-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
