package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"lineupboard/internal/delivery/http/helpers"
	"lineupboard/internal/delivery/http/middleware"
	"lineupboard/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one
// dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// LineupController exposes the scheduling commands and the grid read model
// over HTTP. All routes require authentication.
type LineupController struct {
	Logger  *slog.Logger
	Service domain.LineupService
}

func NewLineupController(logger *slog.Logger, svc domain.LineupService) *LineupController {
	return &LineupController{
		Logger:  logger,
		Service: svc,
	}
}

// writeServiceError maps core errors onto the response envelope. Every
// scheduling error is scoped to the one operation that hit it.
func (c *LineupController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var malformed *domain.MalformedTimeError
	switch {
	case errors.As(err, &malformed), errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicateID):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrBusy):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeBusy, err.Error())
	case errors.Is(err, domain.ErrLocked):
		helpers.WriteJSONError(w, http.StatusLocked, helpers.ErrCodeLocked, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

func requireAuthAndPath(w http.ResponseWriter, r *http.Request, names ...string) ([]string, bool) {
	values := make([]string, 0, len(names))
	for _, name := range names {
		v := r.PathValue(name)
		if v == "" {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
			return nil, false
		}
		values = append(values, v)
	}
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	return values, true
}

// GetLineupSuccessResponse is the success response envelope for
// GET /events/{eventID}/lineup (200).
type GetLineupSuccessResponse struct {
	Data  *domain.LineupView `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// GetLineup godoc
// @Summary Get the lineup board for an event
// @Description Returns stages, time slots, scheduled sets keyed by stage and time, the unassigned artist pool, conflicting artist ids, and the lock flag. Requires authentication.
// @Tags lineup
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.GetLineupSuccessResponse "data contains the lineup view"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/lineup [get]
func (c *LineupController) GetLineup(w http.ResponseWriter, r *http.Request) {
	vals, ok := requireAuthAndPath(w, r, "eventID")
	if !ok {
		return
	}
	view, err := c.Service.View(r.Context(), vals[0])
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// PlaceArtistRequest is the request body for
// POST /events/{eventID}/lineup/assignments.
type PlaceArtistRequest struct {
	ArtistID        string `json:"artist_id"`
	StageID         string `json:"stage_id"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Validate implements Validator.
func (p PlaceArtistRequest) Validate() []string {
	var errs []string
	if p.ArtistID == "" {
		errs = append(errs, "artist_id is required")
	}
	if p.StageID == "" {
		errs = append(errs, "stage_id is required")
	}
	if p.StartTime == "" {
		errs = append(errs, "start_time is required")
	}
	if p.DurationMinutes < 0 {
		errs = append(errs, "duration_minutes must not be negative")
	}
	return errs
}

// PlaceArtistSuccessResponse is the success response envelope for
// POST /events/{eventID}/lineup/assignments (201).
type PlaceArtistSuccessResponse struct {
	Data  *domain.Assignment `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// PlaceArtist godoc
// @Summary Schedule an artist into a time slot
// @Description Places an artist on a stage at the given wall-clock start time ("HH:MM"). Duration defaults to 60 minutes. Rejected with 409 when the artist already has an overlapping set, on any stage. Requires authentication.
// @Tags lineup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body PlaceArtistRequest true "Placement (artist, stage, start time, optional duration)"
// @Success 201 {object} controllers.PlaceArtistSuccessResponse "data contains the created assignment"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (including malformed time)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict or busy"
// @Failure 423 {object} helpers.APIResponse "error.code: locked"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/lineup/assignments [post]
func (c *LineupController) PlaceArtist(w http.ResponseWriter, r *http.Request) {
	vals, ok := requireAuthAndPath(w, r, "eventID")
	if !ok {
		return
	}
	var req PlaceArtistRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	assignment, err := c.Service.PlaceArtist(r.Context(), domain.PlaceArtistInput{
		EventID:         vals[0],
		ArtistID:        req.ArtistID,
		StageID:         req.StageID,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, assignment)
}

// MoveAssignmentRequest is the request body for
// PATCH /events/{eventID}/lineup/assignments/{assignmentID}. stage_id may be
// empty to keep the current stage.
type MoveAssignmentRequest struct {
	StageID   string `json:"stage_id"`
	StartTime string `json:"start_time"`
}

// Validate implements Validator.
func (m MoveAssignmentRequest) Validate() []string {
	if m.StartTime == "" {
		return []string{"start_time is required"}
	}
	return nil
}

// MoveAssignmentSuccessResponse is the success response envelope for
// PATCH /events/{eventID}/lineup/assignments/{assignmentID} (200).
type MoveAssignmentSuccessResponse struct {
	Data  *domain.Assignment `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// MoveAssignment godoc
// @Summary Move a scheduled set to a new slot
// @Description Re-slots an existing set onto a new stage and/or start time, keeping its duration. The target slot is validated conflict-free before the old slot is released. Requires authentication.
// @Tags lineup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param assignmentID path string true "Assignment ID (UUID)"
// @Param body body MoveAssignmentRequest true "New stage and start time"
// @Success 200 {object} controllers.MoveAssignmentSuccessResponse "data contains the moved assignment"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict or busy"
// @Failure 423 {object} helpers.APIResponse "error.code: locked"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/lineup/assignments/{assignmentID} [patch]
func (c *LineupController) MoveAssignment(w http.ResponseWriter, r *http.Request) {
	vals, ok := requireAuthAndPath(w, r, "eventID", "assignmentID")
	if !ok {
		return
	}
	var req MoveAssignmentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	moved, err := c.Service.MoveAssignment(r.Context(), domain.MoveAssignmentInput{
		EventID:      vals[0],
		AssignmentID: vals[1],
		StageID:      req.StageID,
		StartTime:    req.StartTime,
	})
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, moved)
}

// RemoveAssignmentResponse is the data payload for
// DELETE /events/{eventID}/lineup/assignments/{assignmentID} (200).
type RemoveAssignmentResponse struct {
	Status string `json:"status"`
}

// RemoveAssignmentSuccessResponse is the success response envelope for
// DELETE /events/{eventID}/lineup/assignments/{assignmentID} (200).
type RemoveAssignmentSuccessResponse struct {
	Data  RemoveAssignmentResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// RemoveAssignment godoc
// @Summary Remove a scheduled set
// @Description Removes the set from the store and the board. Removing an id that is already gone is a no-op. Requires authentication.
// @Tags lineup
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param assignmentID path string true "Assignment ID (UUID)"
// @Success 200 {object} controllers.RemoveAssignmentSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown event)"
// @Failure 423 {object} helpers.APIResponse "error.code: locked"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/lineup/assignments/{assignmentID} [delete]
func (c *LineupController) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	vals, ok := requireAuthAndPath(w, r, "eventID", "assignmentID")
	if !ok {
		return
	}
	if err := c.Service.RemoveAssignment(r.Context(), vals[0], vals[1]); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RemoveAssignmentResponse{Status: "removed"})
}

// AddStageRequest is the request body for
// POST /events/{eventID}/lineup/stages. venue_id may be empty; the event's
// venue is used then.
type AddStageRequest struct {
	Name    string `json:"name"`
	VenueID string `json:"venue_id"`
}

// Validate implements Validator.
func (a AddStageRequest) Validate() []string {
	if strings.TrimSpace(a.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// AddStageSuccessResponse is the success response envelope for
// POST /events/{eventID}/lineup/stages (201).
type AddStageSuccessResponse struct {
	Data  *domain.Stage     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AddStage godoc
// @Summary Add a stage to the event
// @Description Creates a stage bound to a venue. Without venue_id the event's own venue is used; if the event has none, the request is rejected. Requires authentication.
// @Tags lineup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body AddStageRequest true "Stage name and optional venue"
// @Success 201 {object} controllers.AddStageSuccessResponse "data contains the created stage"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 423 {object} helpers.APIResponse "error.code: locked"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/lineup/stages [post]
func (c *LineupController) AddStage(w http.ResponseWriter, r *http.Request) {
	vals, ok := requireAuthAndPath(w, r, "eventID")
	if !ok {
		return
	}
	var req AddStageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	stage, err := c.Service.AddStage(r.Context(), vals[0], req.Name, req.VenueID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, stage)
}

// RemoveStageResponse is the data payload for
// DELETE /events/{eventID}/lineup/stages/{stageID} (200).
type RemoveStageResponse struct {
	Status string `json:"status"`
}

// RemoveStageSuccessResponse is the success response envelope for
// DELETE /events/{eventID}/lineup/stages/{stageID} (200).
type RemoveStageSuccessResponse struct {
	Data  RemoveStageResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// RemoveStage godoc
// @Summary Remove a stage and its sets
// @Description Deletes the stage together with every assignment scheduled on it. Requires authentication.
// @Tags lineup
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param stageID path string true "Stage ID (UUID)"
// @Success 200 {object} controllers.RemoveStageSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 423 {object} helpers.APIResponse "error.code: locked"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/lineup/stages/{stageID} [delete]
func (c *LineupController) RemoveStage(w http.ResponseWriter, r *http.Request) {
	vals, ok := requireAuthAndPath(w, r, "eventID", "stageID")
	if !ok {
		return
	}
	if err := c.Service.RemoveStage(r.Context(), vals[0], vals[1]); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RemoveStageResponse{Status: "removed"})
}

// SetLockRequest is the request body for PUT /events/{eventID}/lineup/lock.
type SetLockRequest struct {
	Locked *bool `json:"locked"`
}

// Validate implements Validator.
func (s SetLockRequest) Validate() []string {
	if s.Locked == nil {
		return []string{"locked is required"}
	}
	return nil
}

// SetLockSuccessResponse is the success response envelope for
// PUT /events/{eventID}/lineup/lock (200).
type SetLockSuccessResponse struct {
	Data  *domain.LineupView `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// SetLock godoc
// @Summary Lock or unlock the lineup
// @Description Toggles the session lock. A locked lineup rejects every mutating command at the orchestrator boundary without touching the store. Requires authentication.
// @Tags lineup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body SetLockRequest true "Lock flag"
// @Success 200 {object} controllers.SetLockSuccessResponse "data contains the refreshed lineup view"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/lineup/lock [put]
func (c *LineupController) SetLock(w http.ResponseWriter, r *http.Request) {
	vals, ok := requireAuthAndPath(w, r, "eventID")
	if !ok {
		return
	}
	var req SetLockRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	view, err := c.Service.SetLocked(r.Context(), vals[0], *req.Locked)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// ShareLineupRequest is the request body for
// POST /events/{eventID}/lineup/share.
type ShareLineupRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (s ShareLineupRequest) Validate() []string {
	if s.Email == "" {
		return []string{"email is required"}
	}
	if !emailRegex.MatchString(strings.TrimSpace(s.Email)) {
		return []string{"email must be a valid email address"}
	}
	return nil
}

// ShareLineupResponse is the data payload for
// POST /events/{eventID}/lineup/share (200).
type ShareLineupResponse struct {
	Status string `json:"status"`
}

// ShareLineupSuccessResponse is the success response envelope for
// POST /events/{eventID}/lineup/share (200).
type ShareLineupSuccessResponse struct {
	Data  ShareLineupResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ShareLineup godoc
// @Summary Email the lineup summary
// @Description Sends the current schedule, stage by stage in running order, to the given address. Requires authentication.
// @Tags lineup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body ShareLineupRequest true "Recipient email"
// @Success 200 {object} controllers.ShareLineupSuccessResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/lineup/share [post]
func (c *LineupController) ShareLineup(w http.ResponseWriter, r *http.Request) {
	vals, ok := requireAuthAndPath(w, r, "eventID")
	if !ok {
		return
	}
	var req ShareLineupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.ShareLineup(r.Context(), vals[0], strings.TrimSpace(req.Email)); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ShareLineupResponse{Status: "sent"})
}
