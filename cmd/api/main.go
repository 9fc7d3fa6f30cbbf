package main

import (
	"fmt"
	"net/http"

	"github.com/rta-tracker/rta-backend-go/internal/config"
	appHTTP "github.com/rta-tracker/rta-backend-go/internal/handler/http"
	"github.com/rta-tracker/rta-backend-go/internal/pkg/database"
	"github.com/rta-tracker/rta-backend-go/internal/repository/postgresql"
	agentService "github.com/rta-tracker/rta-backend-go/internal/service/agent"
	metricsService "github.com/rta-tracker/rta-backend-go/internal/service/metrics"
	offDayService "github.com/rta-tracker/rta-backend-go/internal/service/offday"
	shiftService "github.com/rta-tracker/rta-backend-go/internal/service/shift"
	trackingService "github.com/rta-tracker/rta-backend-go/internal/service/tracking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	agentRepo := postgresql.NewAgentRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	offDayRepo := postgresql.NewOffDayRepository(db)

	policy := cfg.Policy()
	engine := metricsService.NewEngine(policy)

	agentSvc := agentService.NewAgentService(db, agentRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, agentRepo)
	breakSvc := trackingService.NewBreakService(db, policy, breakRepo, agentRepo)
	offDaySvc := offDayService.NewOffDayService(db, offDayRepo, agentRepo)
	metricsSvc := metricsService.NewMetricsService(engine, agentRepo, shiftRepo, breakRepo, offDayRepo)

	agentHandler := appHTTP.NewAgentHandler(agentSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	breakHandler := appHTTP.NewBreakHandler(breakSvc)
	offDayHandler := appHTTP.NewOffDayHandler(offDaySvc)
	metricsHandler := appHTTP.NewMetricsHandler(metricsSvc)

	router := appHTTP.NewRouter(
		agentHandler,
		shiftHandler,
		breakHandler,
		offDayHandler,
		metricsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
