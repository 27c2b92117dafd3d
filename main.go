// File: clubhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubhub/config"
	"clubhub/cron"
	"clubhub/database"
	eventRepo "clubhub/database/repository/event"
	memberRepo "clubhub/database/repository/member"
	opportunityRepo "clubhub/database/repository/opportunity"
	resourceRepo "clubhub/database/repository/resource"
	"clubhub/handlers"
	"clubhub/middleware"
	"clubhub/routes"
	"clubhub/services/mail"
	"clubhub/services/reminder"
	"clubhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	events := eventRepo.NewMongoEventRepo()
	members := memberRepo.NewMongoMemberRepo()
	resources := resourceRepo.NewMongoResourceRepo()
	opportunities := opportunityRepo.NewMongoOpportunityRepo()

	// reminder engine.
	engineCfg := reminder.Config{
		StoreURL:        config.AppConfig.DatabaseURL,
		StoreCredential: config.AppConfig.DatabaseCredential,
		MailAPIKey:      config.AppConfig.ResendAPIKey,
		From:            config.AppConfig.MailFrom,
	}
	dispatcher := &reminder.Dispatcher{
		Mailer: mail.NewResendClient(config.AppConfig.ResendAPIKey),
		From:   config.AppConfig.MailFrom,
	}
	engine, err := reminder.NewEngine(engineCfg, events, members, dispatcher)
	if err != nil {
		// Keep serving the portal; the trigger endpoint reports the
		// configuration error on each invocation.
		logger.Sugar().Warnf("main: reminder engine not fully configured: %v", err)
		engine = &reminder.Engine{
			Config:     engineCfg,
			Events:     events,
			Members:    members,
			Dispatcher: dispatcher,
		}
	}
	if config.AppConfig.ReminderDedup {
		engine.Guard = &reminder.RedisSentGuard{Client: utils.GetReminderGuardClient()}
		logger.Sugar().Info("main: reminder dedup guard enabled")
	}

	// Queued trigger for external schedulers.
	cron.InitReminderWorker(engine)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Reminder:    handlers.NewReminderHandler(engine),
		Event:       handlers.NewEventHandler(events),
		Member:      handlers.NewMemberHandler(members),
		Resource:    handlers.NewResourceHandler(resources),
		Opportunity: handlers.NewOpportunityHandler(opportunities),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
