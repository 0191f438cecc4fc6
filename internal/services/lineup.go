package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"lineupboard/internal/domain"
)

// DefaultSetMinutes is the set length used when a placement names none.
const DefaultSetMinutes = 60

// session is the editing state for one event: the board, the roster
// snapshot, and the lock and busy flags. All fields are guarded by mu; busy
// additionally covers the window where a mutation is awaiting the
// persistence collaborator.
type session struct {
	mu     sync.Mutex
	busy   bool
	locked bool
	event  *domain.Event
	board  *domain.Board
	roster []*domain.Artist
}

type lineupService struct {
	eventRepo      domain.EventRepository
	stageRepo      domain.StageRepository
	assignmentRepo domain.AssignmentRepository
	roster         domain.ArtistRoster
	mailer         domain.Mailer
	renderer       domain.LineupEmailRenderer
	grid           domain.GridConfig
	contextTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

// NewLineupService wires the scheduling orchestrator. One session is kept
// per event and loaded lazily on first use.
func NewLineupService(
	eventRepo domain.EventRepository,
	stageRepo domain.StageRepository,
	assignmentRepo domain.AssignmentRepository,
	roster domain.ArtistRoster,
	mailer domain.Mailer,
	renderer domain.LineupEmailRenderer,
	grid domain.GridConfig,
	timeout time.Duration,
) domain.LineupService {
	return &lineupService{
		eventRepo:      eventRepo,
		stageRepo:      stageRepo,
		assignmentRepo: assignmentRepo,
		roster:         roster,
		mailer:         mailer,
		renderer:       renderer,
		grid:           grid,
		contextTimeout: timeout,
		sessions:       make(map[string]*session),
	}
}

// anchorDate resolves the calendar date slot times anchor to. An event
// without a date falls back to today.
func anchorDate(event *domain.Event) time.Time {
	if event.Date != nil {
		return *event.Date
	}
	return time.Now()
}

// getSession returns the loaded session for the event, loading stages,
// assignments, and the roster on first access.
func (s *lineupService) getSession(ctx context.Context, eventID string) (*session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[eventID]
	if !ok {
		sess = &session{}
		s.sessions[eventID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.board != nil {
		return sess, nil
	}
	if err := s.load(ctx, eventID, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// load fetches the event, its stages and assignments, and the roster, and
// builds the board. Caller holds sess.mu.
func (s *lineupService) load(ctx context.Context, eventID string, sess *session) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("load event: %w", err)
	}

	board := domain.NewBoard(anchorDate(event), s.grid)

	stages, err := s.stageRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load stages: %w", err)
	}
	for _, st := range stages {
		if err := board.AddStage(st); err != nil {
			return fmt.Errorf("register stage %s: %w", st.ID, err)
		}
	}

	assignments, err := s.assignmentRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load assignments: %w", err)
	}
	for _, a := range assignments {
		if err := board.AddAssignment(a); err != nil {
			return fmt.Errorf("register assignment %s: %w", a.ID, err)
		}
	}

	artists, err := s.roster.ListArtistsForEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	sess.event = event
	sess.board = board
	sess.roster = artists
	return nil
}

// beginMutation marks the session busy for the duration of one mutating
// command. A second gesture while a write is in flight gets ErrBusy; a
// locked session rejects everything except the lock toggle itself.
func (sess *session) beginMutation(ignoreLock bool) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.busy {
		return domain.ErrBusy
	}
	if sess.locked && !ignoreLock {
		return domain.ErrLocked
	}
	sess.busy = true
	return nil
}

func (sess *session) endMutation() {
	sess.mu.Lock()
	sess.busy = false
	sess.mu.Unlock()
}

func (s *lineupService) View(ctx context.Context, eventID string) (*domain.LineupView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.getSession(ctx, eventID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.buildView(sess), nil
}

func (s *lineupService) PlaceArtist(ctx context.Context, in domain.PlaceArtistInput) (*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.getSession(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	if err := sess.beginMutation(false); err != nil {
		return nil, err
	}
	defer sess.endMutation()

	duration := in.DurationMinutes
	if duration == 0 {
		duration = DefaultSetMinutes
	}
	if duration < 0 {
		return nil, fmt.Errorf("duration must be positive: %w", domain.ErrInvalidInput)
	}
	start, err := domain.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	board := sess.board
	if !board.StageExists(in.StageID) {
		sess.mu.Unlock()
		return nil, fmt.Errorf("stage %s: %w", in.StageID, domain.ErrNotFound)
	}
	if findArtist(sess.roster, in.ArtistID) == nil {
		sess.mu.Unlock()
		return nil, fmt.Errorf("artist %s is not on the event roster: %w", in.ArtistID, domain.ErrNotFound)
	}
	startTS := start.AtDate(board.EventDate(), board.Grid().RolloverHour())
	endTS := startTS.Add(time.Duration(duration) * time.Minute)
	if domain.HasConflict(board, in.ArtistID, startTS, endTS, "") {
		sess.mu.Unlock()
		return nil, domain.ErrConflict
	}
	sess.mu.Unlock()

	now := time.Now()
	a := domain.NewAssignment(uuid.NewString(), in.EventID, in.ArtistID, in.StageID, startTS, endTS, now, now)
	if err := s.assignmentRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.board.AddAssignment(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *lineupService) MoveAssignment(ctx context.Context, in domain.MoveAssignmentInput) (*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.getSession(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	if err := sess.beginMutation(false); err != nil {
		return nil, err
	}
	defer sess.endMutation()

	start, err := domain.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	board := sess.board
	current := board.Assignment(in.AssignmentID)
	if current == nil {
		sess.mu.Unlock()
		return nil, fmt.Errorf("assignment %s: %w", in.AssignmentID, domain.ErrNotFound)
	}
	stageID := in.StageID
	if stageID == "" {
		stageID = current.StageID
	}
	if !board.StageExists(stageID) {
		sess.mu.Unlock()
		return nil, fmt.Errorf("stage %s: %w", stageID, domain.ErrNotFound)
	}
	startTS := start.AtDate(board.EventDate(), board.Grid().RolloverHour())
	endTS := startTS.Add(current.EndTime.Sub(current.StartTime))
	// Validate the target slot before touching the old one, so a conflicting
	// move cannot leave the artist unscheduled.
	if domain.HasConflict(board, current.ArtistID, startTS, endTS, current.ID) {
		sess.mu.Unlock()
		return nil, domain.ErrConflict
	}
	artistID := current.ArtistID
	oldID := current.ID
	sess.mu.Unlock()

	if err := s.assignmentRepo.Delete(ctx, oldID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("remove old slot: %w", err)
	}
	now := time.Now()
	moved := domain.NewAssignment(uuid.NewString(), in.EventID, artistID, stageID, startTS, endTS, now, now)
	if err := s.assignmentRepo.Create(ctx, moved); err != nil {
		// The old slot is already gone from the store; drop it locally too and
		// surface the failure. The artist ends up unscheduled, not duplicated.
		sess.mu.Lock()
		sess.board.RemoveAssignment(oldID)
		sess.mu.Unlock()
		return nil, fmt.Errorf("re-create slot: %w", err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.board.RemoveAssignment(oldID)
	if err := sess.board.AddAssignment(moved); err != nil {
		return nil, err
	}
	return moved, nil
}

func (s *lineupService) RemoveAssignment(ctx context.Context, eventID, assignmentID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.getSession(ctx, eventID)
	if err != nil {
		return err
	}
	if err := sess.beginMutation(false); err != nil {
		return err
	}
	defer sess.endMutation()

	// Removing an id the store no longer has is a no-op, matching the board.
	if err := s.assignmentRepo.Delete(ctx, assignmentID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete assignment: %w", err)
	}

	sess.mu.Lock()
	sess.board.RemoveAssignment(assignmentID)
	sess.mu.Unlock()
	return nil
}

func (s *lineupService) AddStage(ctx context.Context, eventID, name, venueID string) (*domain.Stage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.getSession(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := sess.beginMutation(false); err != nil {
		return nil, err
	}
	defer sess.endMutation()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("stage name is required: %w", domain.ErrInvalidInput)
	}
	sess.mu.Lock()
	if venueID == "" && sess.event.VenueID != nil {
		venueID = *sess.event.VenueID
	}
	sess.mu.Unlock()
	if venueID == "" {
		return nil, fmt.Errorf("no venue for stage: assign a venue to the event or name one: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	stage := domain.NewStage(uuid.NewString(), eventID, name, venueID, now, now)
	if err := s.stageRepo.Create(ctx, stage); err != nil {
		return nil, fmt.Errorf("create stage: %w", err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.board.AddStage(stage); err != nil {
		return nil, err
	}
	return stage, nil
}

func (s *lineupService) RemoveStage(ctx context.Context, eventID, stageID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.getSession(ctx, eventID)
	if err != nil {
		return err
	}
	if err := sess.beginMutation(false); err != nil {
		return err
	}
	defer sess.endMutation()

	sess.mu.Lock()
	exists := sess.board.StageExists(stageID)
	sess.mu.Unlock()
	if !exists {
		return fmt.Errorf("stage %s: %w", stageID, domain.ErrNotFound)
	}

	if err := s.stageRepo.Delete(ctx, stageID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete stage: %w", err)
	}

	sess.mu.Lock()
	sess.board.RemoveStage(stageID)
	sess.mu.Unlock()
	return nil
}

func (s *lineupService) SetLocked(ctx context.Context, eventID string, locked bool) (*domain.LineupView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sess, err := s.getSession(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := sess.beginMutation(true); err != nil {
		return nil, err
	}
	defer sess.endMutation()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.locked = locked
	return s.buildView(sess), nil
}

func (s *lineupService) ShareLineup(ctx context.Context, eventID, recipient string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return fmt.Errorf("recipient is required: %w", domain.ErrInvalidInput)
	}
	sess, err := s.getSession(ctx, eventID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	data := buildEmailData(sess)
	sess.mu.Unlock()

	subject, html, text, err := s.renderer.Render(data)
	if err != nil {
		return fmt.Errorf("render lineup email: %w", err)
	}
	if err := s.mailer.Send(recipient, subject, html, text); err != nil {
		return fmt.Errorf("send lineup email: %w", err)
	}
	return nil
}

func findArtist(roster []*domain.Artist, id string) *domain.Artist {
	for _, a := range roster {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// buildView projects the session into the read model. Caller holds sess.mu.
func (s *lineupService) buildView(sess *session) *domain.LineupView {
	board := sess.board
	slots := board.Grid().Slots()
	stages := board.Stages()

	sets := make([]*domain.ScheduledSet, 0, board.Size())
	byID := make(map[string]*domain.ScheduledSet, board.Size())
	for _, a := range board.Assignments() {
		set := &domain.ScheduledSet{
			ID:              a.ID,
			ArtistID:        a.ArtistID,
			StageID:         a.StageID,
			Artist:          findArtist(sess.roster, a.ArtistID),
			StartTimeOfDay:  a.StartTimeOfDay().String(),
			EndTimeOfDay:    a.EndTimeOfDay().String(),
			DurationMinutes: a.DurationMinutes(),
			StartTime:       a.StartTime,
			EndTime:         a.EndTime,
		}
		sets = append(sets, set)
		byID[a.ID] = set
	}
	sort.Slice(sets, func(i, j int) bool {
		if !sets[i].StartTime.Equal(sets[j].StartTime) {
			return sets[i].StartTime.Before(sets[j].StartTime)
		}
		return sets[i].StageID < sets[j].StageID
	})

	byStageAndTime := make(map[string]*domain.ScheduledSet)
	for _, stage := range stages {
		for _, slot := range slots {
			t := domain.TimeOfDay{Hour: slot.Hour, Minute: slot.Minute}
			if a := board.FindAt(stage.ID, t); a != nil {
				byStageAndTime[domain.StageTimeKey(stage.ID, slot.Time)] = byID[a.ID]
			}
		}
	}

	assigned := board.AssignedArtistIDs()
	unassigned := make([]*domain.Artist, 0, len(sess.roster))
	for _, artist := range sess.roster {
		if _, ok := assigned[artist.ID]; !ok {
			unassigned = append(unassigned, artist)
		}
	}

	return &domain.LineupView{
		Event:              sess.event,
		Stages:             stages,
		TimeSlots:          slots,
		Sets:               sets,
		SetsByStageAndTime: byStageAndTime,
		UnassignedArtists:  unassigned,
		ConflictArtistIDs:  domain.ConflictingArtistIDs(board),
		Locked:             sess.locked,
	}
}

// buildEmailData flattens the board into the share-email payload, stages in
// creation order and each stage's sets in running order.
func buildEmailData(sess *session) *domain.LineupEmailData {
	data := &domain.LineupEmailData{EventName: sess.event.Name}
	if sess.event.Date != nil {
		data.EventDate = sess.event.Date.Format("Monday, January 2, 2006")
	}
	for _, stage := range sess.board.Stages() {
		es := domain.LineupEmailStage{Name: stage.Name}
		var onStage []*domain.Assignment
		for _, a := range sess.board.Assignments() {
			if a.StageID == stage.ID {
				onStage = append(onStage, a)
			}
		}
		sort.Slice(onStage, func(i, j int) bool {
			return onStage[i].StartTime.Before(onStage[j].StartTime)
		})
		for _, a := range onStage {
			name := a.ArtistID
			if artist := findArtist(sess.roster, a.ArtistID); artist != nil {
				name = artist.Name
			}
			es.Sets = append(es.Sets, domain.LineupEmailSet{
				ArtistName: name,
				StartTime:  a.StartTimeOfDay().String(),
				EndTime:    a.EndTimeOfDay().String(),
			})
		}
		data.Stages = append(data.Stages, es)
	}
	return data
}
