// Package app содержит основную структуру приложения и логику инициализации.
// Собирает сервис, обработчики и маршруты и запускает HTTP сервер.
package app

import (
	"context"
	"net/http"

	"github.com/InQaaaaGit/batchsum/internal/config"
	"github.com/InQaaaaGit/batchsum/internal/handler"
	"github.com/InQaaaaGit/batchsum/internal/middleware"
	"github.com/InQaaaaGit/batchsum/internal/server"
	"github.com/InQaaaaGit/batchsum/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App представляет сервис пакетного суммирования.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и обработчики запросов.
type App struct {
	config  *config.Config   // Конфигурация приложения
	router  *chi.Mux         // HTTP роутер для обработки запросов
	logger  *zap.Logger      // Логгер, созданный при старте процесса
	handler *handler.Handler // Обработчики HTTP запросов
}

// NewApp создает приложение и регистрирует маршруты.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	svc := service.NewBatchService(cfg, logger)

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: handler.NewHandler(svc, cfg, logger),
	}
	a.setupRoutes()
	return a
}

// setupRoutes регистрирует middleware и эндпоинты API
func (a *App) setupRoutes() {
	a.router.Use(chimiddleware.RequestID)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	// Recover внутри gzip: ответ 500 пишется через тот же сжимающий writer
	a.router.Use(middleware.GzipMiddleware(a.logger))
	a.router.Use(middleware.RecoverMiddleware(a.logger))

	a.router.Post("/add_numbers", a.handler.HandleAddNumbers)
	a.router.Post("/process_batch", a.handler.HandleProcessBatch)
	a.router.Get("/ping", a.handler.HandlePing)
}

// Router возвращает обработчик со всеми маршрутами, используется в тестах
func (a *App) Router() http.Handler {
	return a.router
}

// Run запускает HTTP или HTTPS сервер и блокирует до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	return server.NewHTTPServer(a.router, a.config, a.logger).Run(ctx)
}
