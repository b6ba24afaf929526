package main

import (
	"log"
	"net/http"

	"freight_dispatch/internal/config"
	"freight_dispatch/internal/controllers"
	"freight_dispatch/internal/logger"
	"freight_dispatch/internal/middleware"
	"freight_dispatch/internal/routes"
	"freight_dispatch/internal/services"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Configuration is read once and threaded through the components
	cfg := config.Load()

	db := config.ConnectDB(cfg)
	svc := services.New(db)
	issuer := middleware.NewTokenIssuer(cfg.JWTSecret)

	r := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(cfg, issuer),
		Group:    controllers.NewGroupController(svc),
		Variant:  controllers.NewVariantController(svc),
		Carrier:  controllers.NewCarrierController(svc),
		Shipment: controllers.NewShipmentController(svc),
		Report:   controllers.NewReportController(svc),
	}, issuer)

	// Wrap with CORS
	handler := middleware.EnableCORS(r, cfg.AllowedOrigins)

	log.Println("🚀 Server running at :" + cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
