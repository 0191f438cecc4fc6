package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lineupboard/internal/delivery/http/helpers"
	"lineupboard/internal/delivery/http/middleware"
	"lineupboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeLineupService implements domain.LineupService for handler tests.
type fakeLineupService struct {
	viewErr   error
	placeErr  error
	moveErr   error
	removeErr error
	stageErr  error
	lockErr   error
	shareErr  error

	lastPlace     domain.PlaceArtistInput
	lastMove      domain.MoveAssignmentInput
	lastRemoveID  string
	lastStageName string
	lastLocked    bool
	lastRecipient string
}

func (f *fakeLineupService) View(ctx context.Context, eventID string) (*domain.LineupView, error) {
	if f.viewErr != nil {
		return nil, f.viewErr
	}
	return &domain.LineupView{
		SetsByStageAndTime: map[string]*domain.ScheduledSet{},
		ConflictArtistIDs:  []string{},
	}, nil
}

func (f *fakeLineupService) PlaceArtist(ctx context.Context, in domain.PlaceArtistInput) (*domain.Assignment, error) {
	f.lastPlace = in
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	start := time.Date(2025, 7, 4, 22, 0, 0, 0, time.UTC)
	return domain.NewAssignment("as-created", in.EventID, in.ArtistID, in.StageID,
		start, start.Add(time.Hour), start, start), nil
}

func (f *fakeLineupService) MoveAssignment(ctx context.Context, in domain.MoveAssignmentInput) (*domain.Assignment, error) {
	f.lastMove = in
	if f.moveErr != nil {
		return nil, f.moveErr
	}
	start := time.Date(2025, 7, 5, 1, 0, 0, 0, time.UTC)
	return domain.NewAssignment("as-moved", in.EventID, "ar-1", in.StageID,
		start, start.Add(time.Hour), start, start), nil
}

func (f *fakeLineupService) RemoveAssignment(ctx context.Context, eventID, assignmentID string) error {
	f.lastRemoveID = assignmentID
	return f.removeErr
}

func (f *fakeLineupService) AddStage(ctx context.Context, eventID, name, venueID string) (*domain.Stage, error) {
	f.lastStageName = name
	if f.stageErr != nil {
		return nil, f.stageErr
	}
	now := time.Now()
	return domain.NewStage("st-created", eventID, name, venueID, now, now), nil
}

func (f *fakeLineupService) RemoveStage(ctx context.Context, eventID, stageID string) error {
	return f.stageErr
}

func (f *fakeLineupService) SetLocked(ctx context.Context, eventID string, locked bool) (*domain.LineupView, error) {
	f.lastLocked = locked
	if f.lockErr != nil {
		return nil, f.lockErr
	}
	return &domain.LineupView{Locked: locked}, nil
}

func (f *fakeLineupService) ShareLineup(ctx context.Context, eventID, recipient string) error {
	f.lastRecipient = recipient
	return f.shareErr
}

func newTestRequest(method, target, body string, withUser bool) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if withUser {
		req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
	}
	return req
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	return envelope
}

func TestLineupController_PlaceArtist(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		noUserContext  bool
		wantStatus     int
		wantErrCode    string
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"artist_id":"ar-1","stage_id":"st-1","start_time":"22:00","duration_minutes":60}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "default duration accepted",
			body:       `{"artist_id":"ar-1","stage_id":"st-1","start_time":"23:30"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "no user in context",
			body:           `{"artist_id":"ar-1","stage_id":"st-1","start_time":"22:00"}`,
			noUserContext:  true,
			wantStatus:     http.StatusUnauthorized,
			wantErrCode:    helpers.ErrCodeUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "missing artist",
			body:           `{"stage_id":"st-1","start_time":"22:00"}`,
			wantStatus:     http.StatusBadRequest,
			wantErrCode:    helpers.ErrCodeBadRequest,
			wantBodySubstr: "artist_id is required",
		},
		{
			name:           "negative duration",
			body:           `{"artist_id":"ar-1","stage_id":"st-1","start_time":"22:00","duration_minutes":-15}`,
			wantStatus:     http.StatusBadRequest,
			wantErrCode:    helpers.ErrCodeBadRequest,
			wantBodySubstr: "duration_minutes",
		},
		{
			name:           "unknown field rejected",
			body:           `{"artist_id":"ar-1","stage_id":"st-1","start_time":"22:00","id":"custom"}`,
			wantStatus:     http.StatusBadRequest,
			wantErrCode:    helpers.ErrCodeBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "malformed time maps to 400",
			body:           `{"artist_id":"ar-1","stage_id":"st-1","start_time":"25:99"}`,
			fakeErr:        &domain.MalformedTimeError{Input: "25:99"},
			wantStatus:     http.StatusBadRequest,
			wantErrCode:    helpers.ErrCodeBadRequest,
			wantBodySubstr: "25:99",
		},
		{
			name:           "unknown stage maps to 404",
			body:           `{"artist_id":"ar-1","stage_id":"st-missing","start_time":"22:00"}`,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantErrCode:    helpers.ErrCodeNotFound,
			wantBodySubstr: "not found",
		},
		{
			name:           "double booking maps to 409",
			body:           `{"artist_id":"ar-1","stage_id":"st-1","start_time":"22:00"}`,
			fakeErr:        domain.ErrConflict,
			wantStatus:     http.StatusConflict,
			wantErrCode:    helpers.ErrCodeConflict,
			wantBodySubstr: "already scheduled",
		},
		{
			name:           "busy session maps to 409",
			body:           `{"artist_id":"ar-1","stage_id":"st-1","start_time":"22:00"}`,
			fakeErr:        domain.ErrBusy,
			wantStatus:     http.StatusConflict,
			wantErrCode:    helpers.ErrCodeBusy,
			wantBodySubstr: "in flight",
		},
		{
			name:           "locked lineup maps to 423",
			body:           `{"artist_id":"ar-1","stage_id":"st-1","start_time":"22:00"}`,
			fakeErr:        domain.ErrLocked,
			wantStatus:     http.StatusLocked,
			wantErrCode:    helpers.ErrCodeLocked,
			wantBodySubstr: "locked",
		},
		{
			name:           "service error maps to 500",
			body:           `{"artist_id":"ar-1","stage_id":"st-1","start_time":"22:00"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantErrCode:    helpers.ErrCodeInternalError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeLineupService{placeErr: tt.fakeErr}
			ctrl := NewLineupController(testLogger, fake)
			req := newTestRequest(http.MethodPost, "/events/ev-1/lineup/assignments", tt.body, !tt.noUserContext)
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.PlaceArtist(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var assignment domain.Assignment
				require.NoError(t, json.Unmarshal(dataBytes, &assignment))
				assert.Equal(t, "as-created", assignment.ID)
				assert.Equal(t, "ev-1", fake.lastPlace.EventID)
				assert.Equal(t, "ar-1", fake.lastPlace.ArtistID)
				return
			}
			require.NotNil(t, envelope.Error, "error response must have error set")
			assert.Equal(t, tt.wantErrCode, envelope.Error.Code, "error code")
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
		})
	}
}

func TestLineupController_GetLineup(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "unknown event", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "service error", fakeErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeLineupService{viewErr: tt.fakeErr}
			ctrl := NewLineupController(testLogger, fake)
			req := newTestRequest(http.MethodGet, "/events/ev-1/lineup", "", true)
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.GetLineup(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				require.NotNil(t, envelope.Data)
			}
		})
	}
}

func TestLineupController_MoveAssignment(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"stage_id":"st-2","start_time":"01:00"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "stage omitted keeps current stage",
			body:       `{"start_time":"01:00"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing start time",
			body:           `{"stage_id":"st-2"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "start_time is required",
		},
		{
			name:           "unknown assignment",
			body:           `{"start_time":"01:00"}`,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "not found",
		},
		{
			name:           "target slot conflicts",
			body:           `{"start_time":"01:00"}`,
			fakeErr:        domain.ErrConflict,
			wantStatus:     http.StatusConflict,
			wantBodySubstr: "already scheduled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeLineupService{moveErr: tt.fakeErr}
			ctrl := NewLineupController(testLogger, fake)
			req := newTestRequest(http.MethodPatch, "/events/ev-1/lineup/assignments/as-1", tt.body, true)
			req.SetPathValue("eventID", "ev-1")
			req.SetPathValue("assignmentID", "as-1")
			rr := httptest.NewRecorder()

			ctrl.MoveAssignment(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				assert.Equal(t, "as-1", fake.lastMove.AssignmentID)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
		})
	}
}

func TestLineupController_RemoveAssignment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeLineupService{}
		ctrl := NewLineupController(testLogger, fake)
		req := newTestRequest(http.MethodDelete, "/events/ev-1/lineup/assignments/as-1", "", true)
		req.SetPathValue("eventID", "ev-1")
		req.SetPathValue("assignmentID", "as-1")
		rr := httptest.NewRecorder()

		ctrl.RemoveAssignment(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "as-1", fake.lastRemoveID)
		assert.Contains(t, rr.Body.String(), "removed")
	})

	t.Run("locked lineup", func(t *testing.T) {
		fake := &fakeLineupService{removeErr: domain.ErrLocked}
		ctrl := NewLineupController(testLogger, fake)
		req := newTestRequest(http.MethodDelete, "/events/ev-1/lineup/assignments/as-1", "", true)
		req.SetPathValue("eventID", "ev-1")
		req.SetPathValue("assignmentID", "as-1")
		rr := httptest.NewRecorder()

		ctrl.RemoveAssignment(rr, req)

		require.Equal(t, http.StatusLocked, rr.Code)
	})

	t.Run("missing path value", func(t *testing.T) {
		ctrl := NewLineupController(testLogger, &fakeLineupService{})
		req := newTestRequest(http.MethodDelete, "/events/ev-1/lineup/assignments/", "", true)
		req.SetPathValue("eventID", "ev-1")
		req.SetPathValue("assignmentID", "")
		rr := httptest.NewRecorder()

		ctrl.RemoveAssignment(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "missing assignmentID")
	})
}

func TestLineupController_AddStage(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"name":"Main Stage","venue_id":"ve-1"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "venue omitted",
			body:       `{"name":"Tent"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "blank name",
			body:           `{"name":"   "}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required",
		},
		{
			name:           "no venue available",
			body:           `{"name":"Tent"}`,
			fakeErr:        domain.ErrInvalidInput,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeLineupService{stageErr: tt.fakeErr}
			ctrl := NewLineupController(testLogger, fake)
			req := newTestRequest(http.MethodPost, "/events/ev-1/lineup/stages", tt.body, true)
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.AddStage(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				envelope := decodeEnvelope(t, rr)
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var stage domain.Stage
				require.NoError(t, json.Unmarshal(dataBytes, &stage))
				assert.Equal(t, "st-created", stage.ID)
				return
			}
			assert.Contains(t, rr.Body.String(), tt.wantBodySubstr)
		})
	}
}

func TestLineupController_SetLock(t *testing.T) {
	t.Run("lock", func(t *testing.T) {
		fake := &fakeLineupService{}
		ctrl := NewLineupController(testLogger, fake)
		req := newTestRequest(http.MethodPut, "/events/ev-1/lineup/lock", `{"locked":true}`, true)
		req.SetPathValue("eventID", "ev-1")
		rr := httptest.NewRecorder()

		ctrl.SetLock(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, fake.lastLocked)
	})

	t.Run("missing flag", func(t *testing.T) {
		ctrl := NewLineupController(testLogger, &fakeLineupService{})
		req := newTestRequest(http.MethodPut, "/events/ev-1/lineup/lock", `{}`, true)
		req.SetPathValue("eventID", "ev-1")
		rr := httptest.NewRecorder()

		ctrl.SetLock(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "locked is required")
	})
}

func TestLineupController_ShareLineup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"email":"promoter@example.com"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:           "invalid email",
			body:           `{"email":"not-an-email"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "valid email",
		},
		{
			name:           "missing email",
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email is required",
		},
		{
			name:           "mailer failure",
			body:           `{"email":"promoter@example.com"}`,
			fakeErr:        errors.New("ses unavailable"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "ses unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeLineupService{shareErr: tt.fakeErr}
			ctrl := NewLineupController(testLogger, fake)
			req := newTestRequest(http.MethodPost, "/events/ev-1/lineup/share", tt.body, true)
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.ShareLineup(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "promoter@example.com", fake.lastRecipient)
				assert.Contains(t, rr.Body.String(), "sent")
				return
			}
			assert.Contains(t, rr.Body.String(), tt.wantBodySubstr)
		})
	}
}
