package server

import (
	"fastos/cmd/root"
	"fastos/controllers"
	"fastos/internal/config"
	"fastos/internal/logger"
	"fastos/internal/middleware"
	"fastos/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the HTTP control API",
	Long:  `Runs the fastos HTTP server exposing the system lifecycle, service listing, console commands, log snapshots and prometheus metrics`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := startServer(); err != nil {
			logger.Fatal(err)
		}
	},
}

func startServer() error {
	gin.SetMode(config.Config.Server.Mode)

	router := gin.Default()
	router.Use(middleware.MetricsMiddleware())

	sys := services.GetSystem()

	apiController := controllers.NewAPIController(sys)
	apiController.RegisterRoutes(router)

	systemController := controllers.NewSystemController(sys)
	systemController.RegisterRoutes(router)

	serviceController := controllers.NewServiceController(sys)
	serviceController.RegisterRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Infof("%s server listening on %s", sys.Name(), config.Config.Server.Address)
	return router.Run(config.Config.Server.Address)
}

func init() {
	root.RootCmd.AddCommand(serverCmd)
}
