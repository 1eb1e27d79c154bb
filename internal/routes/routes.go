package routes

import (
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

// InitRouter is the composition root: repositories, services and controllers
// are wired here, in one place, and handed to the per-resource routers.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)

	userRepo := repositories.NewUserRepository(dbConn, logger)
	teamRepo := repositories.NewTeamRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo, logger)
	teamService := services.NewTeamService(teamRepo, requestRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, requestRepo, teamRepo, txManager, logger)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, teamRepo, logger)
	boardService := services.NewBoardService(requestRepo, equipmentRepo, userRepo, logger)
	dashboardService := services.NewDashboardService(equipmentRepo, requestRepo, teamRepo, cacheRepo, cfg.Cache.DashboardSnapshotTTL, logger)
	reportService := services.NewReportService(requestRepo, equipmentRepo, teamRepo, userRepo, logger)
	scanService := services.NewScanService(equipmentRepo, cacheRepo, cfg.Cache.ScanLookupTTL, logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Scan stays outside the auth group: shop-floor stations scan codes
	// without a logged-in user.
	runScanRouter(api, scanService, logger)

	runAuthRouter(api, authService, logger, authMW)

	secureGroup := api.Group("", authMW.Auth)
	runUserRouter(secureGroup, userService, logger)
	runTeamRouter(secureGroup, teamService, logger, authMW)
	runEquipmentRouter(secureGroup, equipmentService, logger, authMW)
	runRequestRouter(secureGroup, requestService, logger, authMW)
	runBoardRouter(secureGroup, boardService, logger)
	runDashboardRouter(secureGroup, dashboardService, logger)
	runReportRouter(secureGroup, reportService, logger, authMW)
}
