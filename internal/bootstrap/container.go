package bootstrap

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"notevault-be/internal/config"
	"notevault-be/internal/controller"
	"notevault-be/internal/pkg/logger"
	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/repository/contract"
	"notevault-be/internal/repository/localstore"
	"notevault-be/internal/repository/memory"
	"notevault-be/internal/repository/remote"
	"notevault-be/internal/service"
	"notevault-be/pkg/database"
	"notevault-be/pkg/events"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	NoteController     controller.INoteController
	CategoryController controller.ICategoryController
	BlogController     controller.IBlogController

	// AuthMiddleware guards protected routes: signature check plus a live
	// session for the token's jti, so logout revokes the bearer token.
	AuthMiddleware fiber.Handler

	// Exposed for main.go and tests
	Provider     contract.Provider
	AuthStateBus *events.AuthStateBus
	Logger       logger.ILogger
}

// NewContainer wires the whole application. The storage backend is chosen
// exactly once here: remote when the connection values are configured, the
// local JSON store otherwise. Nothing downstream re-checks the mode; every
// service holds the same provider for the process lifetime.
func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Local store is always constructed: it is either the active backend or
	// the read-only fallback for the public blog surface.
	localProvider, err := localstore.New(cfg.Local.DataDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to open local store: %v", err)
	}

	var provider contract.Provider = localProvider
	var blogFallback contract.Provider

	remoteMode := cfg.RemoteConfigured()
	if remoteMode {
		dsn, err := database.BuildDSN(cfg.Remote.URL, cfg.Remote.AccessKey)
		if err != nil {
			log.Fatalf("[FATAL] Invalid remote backend configuration: %v", err)
		}
		gormDB, err := database.NewGormDBFromDSN(dsn)
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to GORM DB: %v", err)
		}
		provider = remote.NewProvider(gormDB)
		blogFallback = localProvider
		log.Printf("[INFO] Using storage backend: REMOTE")
	} else {
		log.Printf("[INFO] Using storage backend: LOCAL (%s)", cfg.Local.DataDir)
	}

	// In-memory session storage, expiry matching the token lifetime
	sessionRepo := memory.NewSessionRepository(cfg.Auth.TokenExpiry)

	authMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret, sessionRepo)

	// Event bus for the auth-state stream
	authStateBus := events.NewAuthStateBus()

	// Services
	authService := service.NewAuthService(
		provider,
		sessionRepo,
		authStateBus,
		sysLogger,
		remoteMode,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenExpiry,
	)
	noteService := service.NewNoteService(provider, sysLogger)
	categoryService := service.NewCategoryService(provider, sysLogger)
	blogService := service.NewBlogService(provider, blogFallback, cfg.App.ClientURL, sysLogger)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		NoteController:     controller.NewNoteController(noteService),
		CategoryController: controller.NewCategoryController(categoryService),
		BlogController:     controller.NewBlogController(blogService),

		AuthMiddleware: authMiddleware,

		Provider:     provider,
		AuthStateBus: authStateBus,
		Logger:       sysLogger,
	}
}
