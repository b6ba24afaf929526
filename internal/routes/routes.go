package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"freight_dispatch/internal/controllers"
	"freight_dispatch/internal/middleware"
)

// Controllers bundles the handler sets wired into the router.
type Controllers struct {
	Auth     *controllers.AuthController
	Group    *controllers.GroupController
	Variant  *controllers.VariantController
	Carrier  *controllers.CarrierController
	Shipment *controllers.ShipmentController
	Report   *controllers.ReportController
}

// SetupRouter builds the Gin engine. Everything except /auth/login sits
// behind the bearer-token middleware.
func SetupRouter(ctrl Controllers, issuer *middleware.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	AuthRoutes(r, ctrl.Auth)

	auth := middleware.RequireAuth(issuer)
	GroupRoutes(r, auth, ctrl.Group, ctrl.Variant)
	CarrierRoutes(r, auth, ctrl.Carrier)
	ShipmentRoutes(r, auth, ctrl.Shipment)
	ReportRoutes(r, auth, ctrl.Report)

	return r
}
