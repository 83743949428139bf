package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mahir/gradeplan/internal/app/controllers"
	appRoutes "github.com/mahir/gradeplan/internal/app/routes"
	appServices "github.com/mahir/gradeplan/internal/app/services"
	"github.com/mahir/gradeplan/internal/catalog"
	"github.com/mahir/gradeplan/internal/config"
	appMiddleware "github.com/mahir/gradeplan/internal/middleware"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
	"github.com/mahir/gradeplan/internal/pkg/logger"
	"github.com/mahir/gradeplan/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Catalog            *catalog.Catalog
	Store              *session.Store
	CatalogService     *appServices.CatalogService
	SessionService     *appServices.SessionService
	RecordService      *appServices.RecordService
	PlanningService    *appServices.PlanningService
	CatalogController  *appControllers.CatalogController
	SessionController  *appControllers.SessionController
	RecordController   *appControllers.RecordController
	PlanningController *appControllers.PlanningController
	SessionMiddleware  *appMiddleware.SessionMiddleware
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// LoadCatalog loads the course catalog named in the configuration, falling
// back to the embedded one.
func LoadCatalog(cfg *config.Config, lgr zerolog.Logger) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load course catalog")
		return nil, apperrors.NewCustomError(err, "failed to load course catalog")
	}

	lgr.Info().
		Int("version", cat.Version()).
		Int("courses", len(cat.Courses())).
		Msg("Course catalog loaded")
	return cat, nil
}

// BuildDependencies initializes the session store, services and controllers.
func BuildDependencies(cfg *config.Config, cat *catalog.Catalog, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Catalog: cat, Logger: lgr}

	deps.Store = session.NewStore(cfg.SessionTTL(), lgr)
	deps.Store.StartSweeper(cfg.SessionSweepInterval())

	// Services
	deps.CatalogService = appServices.NewCatalogService(cat)
	deps.SessionService = appServices.NewSessionService(deps.Store, cat)
	deps.RecordService = appServices.NewRecordService(deps.Store, cat)
	deps.PlanningService = appServices.NewPlanningService(deps.Store, cat)

	// Controllers
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.SessionController = appControllers.NewSessionController(deps.SessionService)
	deps.RecordController = appControllers.NewRecordController(deps.RecordService)
	deps.PlanningController = appControllers.NewPlanningController(deps.PlanningService)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.Store)

	return deps
}

// SetupRouter creates the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	appRoutes.SetupRouter(
		router,
		deps.CatalogController,
		deps.SessionController,
		deps.RecordController,
		deps.PlanningController,
		deps.SessionMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}
