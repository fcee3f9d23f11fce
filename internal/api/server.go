package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Handler serves the REST API over the shared sqlite database. The now func
// is swappable so tests can pin the clock.
type Handler struct {
	db  *sql.DB
	now func() time.Time
}

func NewHandler(db *sql.DB) *Handler {
	return &Handler{db: db, now: time.Now}
}

// Router wires every route, the request logging/metrics middleware and CORS.
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/api/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/profile", h.putProfile).Methods("PUT")
	r.HandleFunc("/api/weight", h.getWeightHistory).Methods("GET")
	r.HandleFunc("/api/weight", h.postWeight).Methods("POST")
	r.HandleFunc("/api/workouts", h.listWorkouts).Methods("GET")
	r.HandleFunc("/api/workouts", h.postWorkout).Methods("POST")
	r.HandleFunc("/api/workouts/{id}", h.putWorkout).Methods("PUT")
	r.HandleFunc("/api/workouts/{id}", h.deleteWorkout).Methods("DELETE")
	r.HandleFunc("/api/nutrition", h.listNutrition).Methods("GET")
	r.HandleFunc("/api/nutrition", h.postNutrition).Methods("POST")
	r.HandleFunc("/api/nutrition/{id}", h.deleteNutrition).Methods("DELETE")
	r.HandleFunc("/api/today", h.getToday).Methods("GET")
	r.HandleFunc("/api/analytics", h.getAnalytics).Methods("GET")
	r.HandleFunc("/healthz", healthz).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}

// NewServer builds an http.Server with sane timeouts around the handler.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
