package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"lineupboard/internal/delivery/http/controllers"
	"lineupboard/internal/delivery/http/middleware"
	"lineupboard/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(lineupController *controllers.LineupController, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Lineup board
	mux.HandleFunc("GET /events/{eventID}/lineup", auth(lineupController.GetLineup))
	mux.HandleFunc("POST /events/{eventID}/lineup/assignments", auth(lineupController.PlaceArtist))
	mux.HandleFunc("PATCH /events/{eventID}/lineup/assignments/{assignmentID}", auth(lineupController.MoveAssignment))
	mux.HandleFunc("DELETE /events/{eventID}/lineup/assignments/{assignmentID}", auth(lineupController.RemoveAssignment))
	mux.HandleFunc("POST /events/{eventID}/lineup/stages", auth(lineupController.AddStage))
	mux.HandleFunc("DELETE /events/{eventID}/lineup/stages/{stageID}", auth(lineupController.RemoveStage))
	mux.HandleFunc("PUT /events/{eventID}/lineup/lock", auth(lineupController.SetLock))
	mux.HandleFunc("POST /events/{eventID}/lineup/share", auth(lineupController.ShareLineup))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
