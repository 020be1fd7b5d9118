package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Eventos-api/internal/application/auth"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Eventos-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/Eventos-api/internal/interfaces/http"
	"github.com/jhoicas/Eventos-api/pkg/cipher"
	"github.com/jhoicas/Eventos-api/pkg/config"
	pkgjwt "github.com/jhoicas/Eventos-api/pkg/jwt"
	"github.com/jhoicas/Eventos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
		Name:  cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	// Material de llave malformado es error fatal de configuración,
	// nunca un error por request.
	cph, err := cipher.New(cfg.Cipher.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("servicio de cifrado")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := infraredis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	proposalRepo := postgres.NewProposalRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	budgetRepo := postgres.NewBudgetItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	sessionStore := infraredis.NewSessionStore(redisClient)

	jwtCfg := pkgjwt.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessExp:     cfg.JWT.AccessExp(),
		RefreshExp:    cfg.JWT.RefreshExp(),
		Issuer:        cfg.JWT.Issuer,
	}

	authUC := auth.NewAuthUseCase(userRepo, sessionStore, cph, jwtCfg)
	userUC := usecase.NewUserUseCase(userRepo, sessionStore, cph)
	proposalUC := usecase.NewProposalUseCase(proposalRepo)
	eventUC := usecase.NewEventUseCase(eventRepo, budgetRepo, txRunner)
	taskUC := usecase.NewTaskUseCase(taskRepo, eventRepo, userRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Eventos API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		ProposalUC:   proposalUC,
		EventUC:      eventUC,
		TaskUC:       taskUC,
		InventoryUC:  inventoryUC,
		AccessSecret: cfg.JWT.AccessSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
