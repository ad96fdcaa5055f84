package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"lavadero/internal/api"
	"lavadero/internal/auth"
	"lavadero/internal/entities"
	"lavadero/internal/gateway"
	"lavadero/internal/logging"
	"lavadero/internal/repository"
	"lavadero/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	godotenv.Load()

	logger, err := logging.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	upstreamURL := os.Getenv("UPSTREAM_API_URL")
	if upstreamURL == "" {
		logger.Fatal("UPSTREAM_API_URL not set")
	}

	slotDefs := entities.DefaultSlotDefs
	if raw := os.Getenv("AGENDA_SLOTS"); raw != "" {
		slotDefs, err = entities.ParseSlotDefs(raw)
		if err != nil {
			logger.Fatal("invalid AGENDA_SLOTS", zap.Error(err))
		}
	}

	gw := gateway.New(upstreamURL, logger)

	authRepo := repository.NewAuthRepository(gw)
	dayRepo := repository.NewDayRepository(gw)
	orderRepo := repository.NewOrderRepository(gw)
	clientRepo := repository.NewClientRepository(gw)
	catalogRepo := repository.NewCatalogRepository(gw)

	sessions := service.NewSessionService(authRepo, logger)
	gw.SetTokenSource(sessions.Token)
	gw.SetAuthErrorHook(sessions.Clear)

	provider := service.NewAvailabilityProvider(dayRepo, logger)
	calendar := service.NewCalendarController(provider, slotDefs, logger)
	agenda := service.NewAgendaService(dayRepo, orderRepo, catalogRepo, logger)
	clients := service.NewClientService(clientRepo)
	catalog := service.NewCatalogService(catalogRepo)

	// Silent verify when a token survives from a previous run.
	if token := os.Getenv("UPSTREAM_TOKEN"); token != "" {
		sessions.Restore(token)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := sessions.Verify(ctx); err != nil {
			logger.Info("startup verify failed, waiting for login", zap.Error(err))
		}
		cancel()
	}

	jobs := service.NewJobService(sessions, calendar, logger)
	c := cron.New()
	refreshSpec := os.Getenv("REFRESH_CRON")
	if refreshSpec == "" {
		refreshSpec = "@every 5m"
	}
	if err := jobs.Schedule(c, refreshSpec); err != nil {
		logger.Fatal("failed to schedule refresh jobs", zap.Error(err))
	}
	c.Start()
	defer c.Stop()

	authHandler := api.NewAuthHandler(sessions)
	agendaHandler := api.NewAgendaHandler(calendar, agenda)
	clientHandler := api.NewClientHandler(clients)
	catalogHandler := api.NewCatalogHandler(catalog)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/api").Subrouter()
	admin.Use(auth.RequireSession(sessions))
	admin.HandleFunc("/verify", authHandler.Verify).Methods("GET")
	admin.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	admin.HandleFunc("/agenda/events", agendaHandler.Events).Methods("GET")
	admin.HandleFunc("/agenda/refresh", agendaHandler.Refresh).Methods("POST")
	admin.HandleFunc("/agenda/events/{id}/action", agendaHandler.ClickAction).Methods("GET")
	admin.HandleFunc("/agenda/slots/block", agendaHandler.BlockSlot).Methods("POST")
	admin.HandleFunc("/agenda/slots/unblock", agendaHandler.UnblockSlot).Methods("POST")
	admin.HandleFunc("/agenda/orders", agendaHandler.CreateBooking).Methods("POST")
	admin.HandleFunc("/agenda/orders/{id}", agendaHandler.UpdateBooking).Methods("PUT")
	admin.HandleFunc("/agenda/orders/{id}/{date}/{slot}", agendaHandler.DeleteBooking).Methods("DELETE")

	admin.HandleFunc("/clients", clientHandler.List).Methods("GET")
	admin.HandleFunc("/clients", clientHandler.Create).Methods("POST")
	admin.HandleFunc("/clients/{id}", clientHandler.Update).Methods("PUT")
	admin.HandleFunc("/clients/{id}", clientHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/clients/stats/new-by-month", clientHandler.NewByMonth).Methods("GET")

	admin.HandleFunc("/services", catalogHandler.ListServices).Methods("GET")
	admin.HandleFunc("/services", catalogHandler.CreateService).Methods("POST")
	admin.HandleFunc("/services/{id}", catalogHandler.UpdateService).Methods("PUT")
	admin.HandleFunc("/car-types", catalogHandler.ListCarTypes).Methods("GET")
	admin.HandleFunc("/service-prices", catalogHandler.ListServicePrices).Methods("GET")
	admin.HandleFunc("/service-prices/{id}", catalogHandler.UpdateServicePrice).Methods("PUT")
	admin.HandleFunc("/service-prices/car-type/{carTypeId}/service/{serviceId}", catalogHandler.PriceLookup).Methods("GET")

	origins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("server running", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
