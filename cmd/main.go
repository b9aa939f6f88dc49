package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/haulstack/fleetops/internal/config"
	"github.com/haulstack/fleetops/internal/handlers"
	"github.com/haulstack/fleetops/internal/middleware"
	"github.com/haulstack/fleetops/internal/store"
)

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func newMux(st store.Store) *http.ServeMux {
	vehicleHandler := handlers.NewVehicleHandler(st)
	maintenanceHandler := handlers.NewMaintenanceHandler(st)
	inventoryHandler := handlers.NewInventoryHandler(st)
	documentHandler := handlers.NewDocumentHandler(st)
	loadHandler := handlers.NewLoadHandler(st)
	dashboardHandler := handlers.NewDashboardHandler(st)
	exportHandler := handlers.NewExportHandler(st)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/vehicles", vehicleHandler.Handle)
	mux.HandleFunc("/api/maintenance", maintenanceHandler.Handle)
	mux.HandleFunc("/api/inventory", inventoryHandler.Handle)
	mux.HandleFunc("/api/inventory/reset", inventoryHandler.Reset)
	mux.HandleFunc("/api/permits", documentHandler.Permits)
	mux.HandleFunc("/api/taxes", documentHandler.Taxes)
	mux.HandleFunc("/api/loads", loadHandler.Handle)
	mux.HandleFunc("/api/dashboard", dashboardHandler.Handle)
	mux.HandleFunc("/api/export", exportHandler.Handle)
	mux.HandleFunc("/healthz", healthzHandler)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := log.New()

	st, err := store.New(cfg.Store.DataDir, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	handler := middleware.NewRequestLogger(logger).Handle(newMux(st))

	logger.WithFields(log.Fields{
		"port":     cfg.Server.Port,
		"data_dir": cfg.Store.DataDir,
	}).Info("fleetops server listening")
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, handler))
}
