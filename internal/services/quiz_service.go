package services

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/dhanush7123/sanskrit-spark/internal/errors"
	"github.com/dhanush7123/sanskrit-spark/internal/jobs"
	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/dhanush7123/sanskrit-spark/internal/quiz"
	"github.com/google/uuid"
)

// SessionView is what clients see of a live session.
type SessionView struct {
	ID     string `json:"id"`
	PlayID string `json:"play_id"`
	Player string `json:"player"`
	quiz.Snapshot
	Leaderboard []quiz.RankedEntry `json:"leaderboard,omitempty"`
}

// QuizService owns the live quiz sessions of this process
type QuizService interface {
	StartSession(ctx context.Context, profile *models.Profile) (*SessionView, error)
	GetSession(ctx context.Context, id string) (*SessionView, error)
	RestartSession(ctx context.Context, id string) (*SessionView, error)
	SubmitAnswer(ctx context.Context, id string, index int) (*SessionView, error)
	Advance(ctx context.Context, id string) (*SessionView, error)
	Tick(ctx context.Context, id string) (*SessionView, error)
	TickAll(ctx context.Context) int
	Evict(ctx context.Context, idle time.Duration) int
	QuestionCount() int
}

// liveSession gets a fresh playID on every play-through so restarted
// sessions store separate results.
type liveSession struct {
	mu           sync.Mutex
	id           string
	playID       string
	session      *quiz.Session
	profileID    *int64
	player       string
	leaderboard  []quiz.RankedEntry
	lastActivity time.Time
}

func (ls *liveSession) view() *SessionView {
	return &SessionView{
		ID:          ls.id,
		PlayID:      ls.playID,
		Player:      ls.player,
		Snapshot:    ls.session.Snapshot(),
		Leaderboard: ls.leaderboard,
	}
}

type quizService struct {
	questions   []quiz.Question
	leaderboard LeaderboardService
	results     jobs.ResultQueue

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

// NewQuizService creates a QuizService playing through questions in order.
func NewQuizService(questions []quiz.Question, leaderboard LeaderboardService, results jobs.ResultQueue) QuizService {
	return &quizService{
		questions:   questions,
		leaderboard: leaderboard,
		results:     results,
		sessions:    make(map[string]*liveSession),
	}
}

func (s *quizService) QuestionCount() int {
	return len(s.questions)
}

func (s *quizService) StartSession(ctx context.Context, profile *models.Profile) (*SessionView, error) {
	log := logger.FromContext(ctx)
	if len(s.questions) == 0 {
		return nil, errors.NewInternalError(quiz.ErrNoQuestions)
	}

	ls := &liveSession{
		id:           uuid.NewString(),
		playID:       uuid.NewString(),
		session:      quiz.NewSession(s.questions),
		player:       models.AnonymousPlayerName,
		lastActivity: time.Now(),
	}
	if profile != nil {
		id := profile.ID
		ls.profileID = &id
		ls.player = profile.Name
	}
	ls.session.Start()

	s.mu.Lock()
	s.sessions[ls.id] = ls
	live := len(s.sessions)
	s.mu.Unlock()

	log.Info("quiz session started: id=%s, player=%s, live=%d", ls.id, ls.player, live)
	return ls.view(), nil
}

func (s *quizService) GetSession(ctx context.Context, id string) (*SessionView, error) {
	ls, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.view(), nil
}

func (s *quizService) RestartSession(ctx context.Context, id string) (*SessionView, error) {
	log := logger.FromContext(ctx)
	ls, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.session.Start()
	ls.playID = uuid.NewString()
	ls.leaderboard = nil
	ls.lastActivity = time.Now()
	log.Debug("quiz session restarted: id=%s", id)
	return ls.view(), nil
}

func (s *quizService) SubmitAnswer(ctx context.Context, id string, index int) (*SessionView, error) {
	log := logger.FromContext(ctx)
	ls, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.lastActivity = time.Now()
	if rec, ok := ls.session.SubmitAnswer(index); ok {
		log.Debug("answer submitted: id=%s, question=%d, correct=%t, points=%d", id, rec.QuestionID, rec.Correct, rec.Points)
	} else {
		log.Debug("answer ignored: id=%s, phase=%s", id, ls.session.Phase())
	}
	return ls.view(), nil
}

// Advance moves to the next question. Reaching the result phase queues
// the result for persistence and records the score on the leaderboard.
// Neither failure fails the call since the session has already finished.
func (s *quizService) Advance(ctx context.Context, id string) (*SessionView, error) {
	log := logger.FromContext(ctx)
	ls, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.lastActivity = time.Now()
	finished, err := ls.session.Advance()
	if err != nil {
		if stderrors.Is(err, quiz.ErrNotAnswered) || stderrors.Is(err, quiz.ErrNotPlaying) {
			return nil, errors.NewConflictError(err.Error(), err)
		}
		return nil, errors.NewInternalError(err)
	}
	if !finished {
		return ls.view(), nil
	}

	log.Info("quiz session finished: id=%s, player=%s, score=%d", id, ls.player, ls.session.Score())
	if err := s.results.EnqueueResult(ls.result()); err != nil {
		log.Warn("failed to queue quiz result: id=%s, err=%v", id, err)
	}

	board, err := s.leaderboard.Record(ctx, ls.player, ls.profileID, ls.session.Score())
	if err != nil {
		log.Warn("failed to record leaderboard score: id=%s, err=%v", id, err)
		return ls.view(), nil
	}
	ls.leaderboard = board
	return ls.view(), nil
}

func (ls *liveSession) result() models.QuizResult {
	history := ls.session.History()
	answers := make([]models.QuizAnswer, len(history))
	for i, rec := range history {
		answers[i] = models.QuizAnswer{
			QuestionIndex: i,
			QuestionID:    rec.QuestionID,
			SelectedIndex: rec.Selected,
			Correct:       rec.Correct,
			TimedOut:      rec.TimedOut,
			Points:        rec.Points,
		}
	}
	return models.QuizResult{
		SessionID:     ls.playID,
		ProfileID:     ls.profileID,
		PlayerName:    ls.player,
		Score:         ls.session.Score(),
		CorrectCount:  ls.session.CorrectCount(),
		QuestionCount: ls.session.QuestionCount(),
		CompletedAt:   time.Now().UTC(),
		Answers:       answers,
	}
}

// Tick advances one session's clock by a second.
func (s *quizService) Tick(ctx context.Context, id string) (*SessionView, error) {
	log := logger.FromContext(ctx)
	ls, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.lastActivity = time.Now()
	if ls.session.Tick() {
		log.Debug("question timed out: id=%s, index=%d", id, ls.session.CurrentIndex())
	}
	return ls.view(), nil
}

// TickAll ticks every live session once and returns how many timed out.
func (s *quizService) TickAll(ctx context.Context) int {
	log := logger.FromContext(ctx)
	timedOut := 0
	for _, ls := range s.snapshotSessions() {
		ls.mu.Lock()
		if ls.session.Tick() {
			timedOut++
			log.Debug("question timed out: id=%s, index=%d", ls.id, ls.session.CurrentIndex())
		}
		ls.mu.Unlock()
	}
	return timedOut
}

// Evict drops sessions without player activity for at least idle.
func (s *quizService) Evict(ctx context.Context, idle time.Duration) int {
	log := logger.FromContext(ctx)
	var stale []string
	for _, ls := range s.snapshotSessions() {
		ls.mu.Lock()
		if time.Since(ls.lastActivity) >= idle {
			stale = append(stale, ls.id)
		}
		ls.mu.Unlock()
	}
	if len(stale) == 0 {
		return 0
	}

	s.mu.Lock()
	for _, id := range stale {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	log.Info("evicted %d idle quiz sessions", len(stale))
	return len(stale)
}

func (s *quizService) lookup(id string) (*liveSession, error) {
	s.mu.RLock()
	ls, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.NewNotFoundError("quiz session", id)
	}
	return ls, nil
}

func (s *quizService) snapshotSessions() []*liveSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*liveSession, 0, len(s.sessions))
	for _, ls := range s.sessions {
		out = append(out, ls)
	}
	return out
}
