package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dhanush7123/sanskrit-spark/internal/content"
	apperrors "github.com/dhanush7123/sanskrit-spark/internal/errors"
	"github.com/dhanush7123/sanskrit-spark/internal/models"
	"github.com/dhanush7123/sanskrit-spark/internal/quiz"
	"github.com/dhanush7123/sanskrit-spark/internal/services"
	"github.com/dhanush7123/sanskrit-spark/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedEntries() []models.LeaderboardEntry {
	seed := content.SeedLeaderboard()
	out := make([]models.LeaderboardEntry, len(seed))
	for i, e := range seed {
		out[i] = models.LeaderboardEntry{ID: int64(i + 1), Name: e.Name, Score: e.Score}
	}
	return out
}

type quizFixture struct {
	svc   services.QuizService
	board *mocks.MockLeaderboardRepository
	queue *mocks.MockResultQueue
	bank  []quiz.Question
	ctx   context.Context
}

func newQuizFixture() *quizFixture {
	board := new(mocks.MockLeaderboardRepository)
	queue := new(mocks.MockResultQueue)
	bank := content.Questions()
	return &quizFixture{
		svc:   services.NewQuizService(bank, services.NewLeaderboardService(board, 5), queue),
		board: board,
		queue: queue,
		bank:  bank,
		ctx:   context.Background(),
	}
}

func TestQuizService_StartSession(t *testing.T) {
	f := newQuizFixture()

	view, err := f.svc.StartSession(f.ctx, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, models.AnonymousPlayerName, view.Player)
	assert.Equal(t, quiz.PhasePlaying, view.Phase)
	assert.Equal(t, quiz.QuestionTime, view.TimeRemaining)
	assert.Equal(t, 8, view.QuestionCount)
	require.NotNil(t, view.Question)
	assert.Nil(t, view.Question.CorrectIndex)
}

func TestQuizService_StartSessionWithProfile(t *testing.T) {
	f := newQuizFixture()

	view, err := f.svc.StartSession(f.ctx, &models.Profile{ID: 3, Name: "Mira"})
	require.NoError(t, err)
	assert.Equal(t, "Mira", view.Player)
}

func TestQuizService_UnknownSession(t *testing.T) {
	f := newQuizFixture()

	_, err := f.svc.GetSession(f.ctx, "missing")
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestQuizService_AdvanceBeforeAnswerConflicts(t *testing.T) {
	f := newQuizFixture()
	view, err := f.svc.StartSession(f.ctx, nil)
	require.NoError(t, err)

	_, err = f.svc.Advance(f.ctx, view.ID)
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeConflict, appErr.Code)
	assert.ErrorIs(t, err, quiz.ErrNotAnswered)
}

func TestQuizService_FullPlayThroughRecordsResult(t *testing.T) {
	f := newQuizFixture()
	f.board.On("Top", mock.Anything, 5).Return(seedEntries(), nil).Once()
	f.board.On("Insert", mock.Anything, mock.MatchedBy(func(e models.LeaderboardEntry) bool {
		return e.Name == "Mira" && e.Score == 160 && e.ProfileID != nil && *e.ProfileID == 3
	})).Return(int64(6), nil).Once()
	f.queue.On("EnqueueResult", mock.MatchedBy(func(r models.QuizResult) bool {
		return r.Score == 160 && r.CorrectCount == 8 && r.QuestionCount == 8 && len(r.Answers) == 8
	})).Return(nil).Once()

	view, err := f.svc.StartSession(f.ctx, &models.Profile{ID: 3, Name: "Mira"})
	require.NoError(t, err)
	id := view.ID

	for i, q := range f.bank {
		view, err = f.svc.SubmitAnswer(f.ctx, id, q.CorrectIndex)
		require.NoError(t, err)
		require.NotNil(t, view.Question.CorrectIndex)
		assert.Equal(t, 20*(i+1), view.Score)

		view, err = f.svc.Advance(f.ctx, id)
		require.NoError(t, err)
	}

	assert.Equal(t, quiz.PhaseResult, view.Phase)
	assert.Equal(t, 160, view.Score)
	require.Len(t, view.Leaderboard, 5)
	assert.Equal(t, "Arjuna", view.Leaderboard[0].Name)
	assert.Equal(t, "Saraswati", view.Leaderboard[1].Name)
	for _, e := range view.Leaderboard {
		assert.NotEqual(t, "Mira", e.Name, "160 does not make a board of 600+ scores")
	}

	again, err := f.svc.GetSession(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, view.Leaderboard, again.Leaderboard)

	_, err = f.svc.Advance(f.ctx, id)
	assert.ErrorIs(t, err, quiz.ErrNotPlaying)

	f.board.AssertExpectations(t)
	f.queue.AssertExpectations(t)
}

func TestQuizService_QueueFailureDoesNotFailAdvance(t *testing.T) {
	board := new(mocks.MockLeaderboardRepository)
	queue := new(mocks.MockResultQueue)
	bank := content.Questions()[:1]
	svc := services.NewQuizService(bank, services.NewLeaderboardService(board, 5), queue)
	ctx := context.Background()

	board.On("Top", mock.Anything, 5).Return([]models.LeaderboardEntry{}, nil)
	board.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil)
	queue.On("EnqueueResult", mock.Anything).Return(errors.New("worker queue full"))

	view, err := svc.StartSession(ctx, nil)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, view.ID, 3)
	require.NoError(t, err)

	view, err = svc.Advance(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, quiz.PhaseResult, view.Phase)
	assert.Equal(t, []quiz.RankedEntry{{Rank: 1, Name: models.AnonymousPlayerName, Score: 0}}, view.Leaderboard)
}

func TestQuizService_LeaderboardFailureStillQueuesResult(t *testing.T) {
	board := new(mocks.MockLeaderboardRepository)
	queue := new(mocks.MockResultQueue)
	bank := content.Questions()[:1]
	svc := services.NewQuizService(bank, services.NewLeaderboardService(board, 5), queue)
	ctx := context.Background()

	board.On("Top", mock.Anything, 5).Return(nil, errors.New("db locked"))
	queue.On("EnqueueResult", mock.Anything).Return(nil)

	view, err := svc.StartSession(ctx, nil)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, view.ID, bank[0].CorrectIndex)
	require.NoError(t, err)

	view, err = svc.Advance(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, quiz.PhaseResult, view.Phase)
	assert.Equal(t, quiz.Points(quiz.QuestionTime), view.Score)
	assert.Empty(t, view.Leaderboard)

	queue.AssertNumberOfCalls(t, "EnqueueResult", 1)
	board.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	result := queue.Calls[0].Arguments.Get(0).(models.QuizResult)
	assert.Equal(t, view.PlayID, result.SessionID)
	assert.Equal(t, view.Score, result.Score)
}

func TestQuizService_EmptyBankRefusesStart(t *testing.T) {
	queue := new(mocks.MockResultQueue)
	svc := services.NewQuizService(nil, services.NewLeaderboardService(new(mocks.MockLeaderboardRepository), 5), queue)

	_, err := svc.StartSession(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, quiz.ErrNoQuestions)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
}

func TestQuizService_TickTimesOutQuestion(t *testing.T) {
	f := newQuizFixture()
	view, err := f.svc.StartSession(f.ctx, nil)
	require.NoError(t, err)

	for i := 0; i < quiz.QuestionTime-1; i++ {
		assert.Equal(t, 0, f.svc.TickAll(f.ctx))
	}
	assert.Equal(t, 1, f.svc.TickAll(f.ctx))

	view, err = f.svc.GetSession(f.ctx, view.ID)
	require.NoError(t, err)
	require.NotNil(t, view.SelectedAnswer)
	assert.Equal(t, quiz.TimeoutAnswer, *view.SelectedAnswer)
	assert.Equal(t, 0, view.Score)
	require.Len(t, view.History, 1)
	assert.True(t, view.History[0].TimedOut)

	view, err = f.svc.Tick(f.ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.TimeRemaining)
	assert.Len(t, view.History, 1)
}

func TestQuizService_RestartResetsState(t *testing.T) {
	f := newQuizFixture()
	view, err := f.svc.StartSession(f.ctx, nil)
	require.NoError(t, err)

	_, err = f.svc.Tick(f.ctx, view.ID)
	require.NoError(t, err)
	_, err = f.svc.SubmitAnswer(f.ctx, view.ID, f.bank[0].CorrectIndex)
	require.NoError(t, err)

	firstPlay := view.PlayID
	view, err = f.svc.RestartSession(f.ctx, view.ID)
	require.NoError(t, err)
	assert.NotEqual(t, firstPlay, view.PlayID)
	assert.Equal(t, quiz.PhasePlaying, view.Phase)
	assert.Equal(t, 0, view.CurrentIndex)
	assert.Equal(t, 0, view.Score)
	assert.Equal(t, quiz.QuestionTime, view.TimeRemaining)
	assert.Nil(t, view.SelectedAnswer)
	assert.Empty(t, view.History)
}

func TestQuizService_Evict(t *testing.T) {
	f := newQuizFixture()
	view, err := f.svc.StartSession(f.ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, f.svc.Evict(f.ctx, time.Hour))
	assert.Equal(t, 1, f.svc.Evict(f.ctx, 0))

	_, err = f.svc.GetSession(f.ctx, view.ID)
	assert.Error(t, err)
}

func TestQuizService_TickKeepsSessionActive(t *testing.T) {
	f := newQuizFixture()
	view, err := f.svc.StartSession(f.ctx, nil)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	_, err = f.svc.Tick(f.ctx, view.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, f.svc.Evict(f.ctx, 20*time.Millisecond))
	_, err = f.svc.GetSession(f.ctx, view.ID)
	assert.NoError(t, err)
}

func TestClock_TicksLiveSessions(t *testing.T) {
	f := newQuizFixture()
	view, err := f.svc.StartSession(f.ctx, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		services.NewClock(f.svc, 5*time.Millisecond, time.Hour, true).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		v, err := f.svc.GetSession(f.ctx, view.ID)
		return err == nil && v.TimeRemaining < quiz.QuestionTime-1
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestClock_EvictsWithoutTicking(t *testing.T) {
	f := newQuizFixture()
	view, err := f.svc.StartSession(f.ctx, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		services.NewClock(f.svc, 5*time.Millisecond, time.Nanosecond, false).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		_, err := f.svc.GetSession(f.ctx, view.ID)
		return err != nil
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
