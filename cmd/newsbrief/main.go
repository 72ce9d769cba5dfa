package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"newsbrief/internal/app"
	"newsbrief/internal/cache"
	"newsbrief/internal/logger"
	"newsbrief/internal/metrics"
)

const lastBriefKey = "last_brief"

var briefCache = cache.New()

func main() {
	logger.Init()

	if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
		go startMonitoringServer()
	}

	runOnce()

	// Optional re-run loop; without it the binary is a one-shot job.
	if interval := runInterval(); interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			runOnce()
		}
	}
}

func runOnce() {
	res, err := app.Run(context.Background())
	if err != nil {
		logger.Error("run failed", "error", err)
		if runInterval() == 0 {
			os.Exit(1)
		}
		return
	}

	ttl := runInterval()
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	briefCache.Set(lastBriefKey, res, ttl)
}

func runInterval() time.Duration {
	v := os.Getenv("RUN_INTERVAL_MIN")
	if v == "" {
		return 0
	}
	mins, err := strconv.Atoi(v)
	if err != nil || mins <= 0 {
		return 0
	}
	return time.Duration(mins) * time.Minute
}

func startMonitoringServer() {
	port := os.Getenv("MONITORING_PORT")
	if port == "" {
		port = "8080"
	}

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)
	http.HandleFunc("/brief", briefHandler)

	logger.Info("starting monitoring server", "port", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logger.Error("monitoring server error", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func briefHandler(w http.ResponseWriter, r *http.Request) {
	res, ok := briefCache.Get(lastBriefKey)
	if !ok {
		http.Error(w, `{"error":"no brief generated yet"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
