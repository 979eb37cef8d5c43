package quiz

import "errors"

// Phase is the lifecycle stage of a quiz session.
type Phase string

const (
	PhaseStart   Phase = "start"
	PhasePlaying Phase = "playing"
	PhaseResult  Phase = "result"
)

const (
	// QuestionTime is the number of seconds allowed per question.
	QuestionTime = 30
	// TimeoutAnswer is the answer index submitted when the clock runs out.
	TimeoutAnswer = -1
)

var (
	ErrNotAnswered = errors.New("current question has not been answered")
	ErrNotPlaying  = errors.New("session is not in progress")
	ErrNoQuestions = errors.New("question bank is empty")
)

// Question is one immutable entry of the question bank.
type Question struct {
	ID           int      `json:"id"`
	Prompt       string   `json:"prompt"`
	Term         string   `json:"term"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// AnswerRecord is appended to the history once per answered question.
type AnswerRecord struct {
	QuestionID int  `json:"question_id"`
	Selected   int  `json:"selected"`
	Correct    bool `json:"correct"`
	TimedOut   bool `json:"timed_out"`
	Points     int  `json:"points"`
}

// Session is a single play-through of a fixed question sequence.
// It is not safe for concurrent use; callers serialize access.
type Session struct {
	questions     []Question
	phase         Phase
	currentIndex  int
	selected      *int
	timeRemaining int
	score         int
	history       []AnswerRecord
}

// NewSession returns a session in the start phase. The question slice is
// not copied and must not be modified afterwards.
func NewSession(questions []Question) *Session {
	return &Session{
		questions:     questions,
		phase:         PhaseStart,
		timeRemaining: QuestionTime,
	}
}

// Start resets the session to the first question. Calling it again
// restarts the play-through. A session without questions stays in the
// start phase.
func (s *Session) Start() {
	if len(s.questions) == 0 {
		return
	}
	s.phase = PhasePlaying
	s.currentIndex = 0
	s.selected = nil
	s.timeRemaining = QuestionTime
	s.score = 0
	s.history = nil
}

// Tick advances the question clock by one second. When the clock reaches
// zero the question is answered with TimeoutAnswer. It reports whether
// this tick caused a timeout. Ticks outside an unanswered question are
// ignored.
func (s *Session) Tick() bool {
	if s.phase != PhasePlaying || s.selected != nil {
		return false
	}
	if s.timeRemaining > 0 {
		s.timeRemaining--
	}
	if s.timeRemaining > 0 {
		return false
	}
	s.submit(TimeoutAnswer, true)
	return true
}

// SubmitAnswer answers the current question. Any index other than the
// correct one, including out-of-range values, counts as incorrect.
// Repeated submissions for the same question are ignored; ok is false
// when the call had no effect.
func (s *Session) SubmitAnswer(index int) (rec AnswerRecord, ok bool) {
	if s.phase != PhasePlaying || s.selected != nil {
		return AnswerRecord{}, false
	}
	return s.submit(index, false), true
}

func (s *Session) submit(index int, timedOut bool) AnswerRecord {
	q := s.questions[s.currentIndex]
	s.selected = &index

	rec := AnswerRecord{
		QuestionID: q.ID,
		Selected:   index,
		Correct:    index == q.CorrectIndex,
		TimedOut:   timedOut,
	}
	if rec.Correct {
		rec.Points = Points(s.timeRemaining)
		s.score += rec.Points
	}
	s.history = append(s.history, rec)
	return rec
}

// Advance moves past an answered question. It returns true when the
// session has reached the result phase.
func (s *Session) Advance() (finished bool, err error) {
	if s.phase != PhasePlaying {
		return false, ErrNotPlaying
	}
	if s.selected == nil {
		return false, ErrNotAnswered
	}
	if s.currentIndex+1 < len(s.questions) {
		s.currentIndex++
		s.selected = nil
		s.timeRemaining = QuestionTime
		return false, nil
	}
	s.phase = PhaseResult
	return true, nil
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) CurrentIndex() int { return s.currentIndex }
func (s *Session) TimeRemaining() int { return s.timeRemaining }
func (s *Session) Score() int { return s.score }
func (s *Session) QuestionCount() int { return len(s.questions) }

// SelectedAnswer returns the submitted index for the current question.
func (s *Session) SelectedAnswer() (int, bool) {
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// History returns a copy of the answer records so far.
func (s *Session) History() []AnswerRecord {
	out := make([]AnswerRecord, len(s.history))
	copy(out, s.history)
	return out
}

// CorrectCount returns how many answers in the history were correct.
func (s *Session) CorrectCount() int {
	n := 0
	for _, rec := range s.history {
		if rec.Correct {
			n++
		}
	}
	return n
}
