package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"stock-tracker-backend/internal/auth"
	"stock-tracker-backend/internal/config"
	"stock-tracker-backend/internal/database"
	"stock-tracker-backend/internal/product"
	"stock-tracker-backend/internal/respond"
	"stock-tracker-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}

	stockSvc := stock.NewService(db)
	productSvc := product.NewService(db)
	verifier := auth.NewEnvVerifier(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: respond.ErrorHandler,
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, verifier))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	// Products
	protected.Post("/products", product.CreateHandler(productSvc))
	protected.Get("/products/:id", product.GetHandler(productSvc))

	// Stock
	protected.Get("/stock", stock.ListStockHandler(stockSvc))
	protected.Put("/stock/update", stock.UpdateStockHandler(stockSvc))
	protected.Put("/stock/update-days", stock.UpdateDaysHandler(stockSvc))
	protected.Post("/stock/rollover", stock.RolloverHandler(stockSvc))
	protected.Get("/stock/daily-rollover", stock.RolloverStatusHandler(stockSvc))
	protected.Get("/stock/export", stock.ExportCSVHandler(stockSvc))

	// Ledger
	protected.Get("/stock/transactions", stock.ListTransactionsHandler(stockSvc))
	protected.Post("/stock/transaction", stock.CreateTransactionHandler(stockSvc))

	go func() {
		log.Println("Server listening on port", cfg.HTTPPort)
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Println("Server shutdown error:", err)
	}
	if err := database.Close(db); err != nil {
		log.Println("Database close error:", err)
	}
}
