package quiz

// QuestionView is the current question as shown to the player. The answer
// and explanation are only filled in once the question has been answered.
type QuestionView struct {
	ID           int      `json:"id"`
	Prompt       string   `json:"prompt"`
	Term         string   `json:"term"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correct_index,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Snapshot is a read-only copy of the session state for rendering.
type Snapshot struct {
	Phase          Phase          `json:"phase"`
	CurrentIndex   int            `json:"current_index"`
	QuestionCount  int            `json:"question_count"`
	TimeRemaining  int            `json:"time_remaining"`
	Score          int            `json:"score"`
	SelectedAnswer *int           `json:"selected_answer"`
	History        []AnswerRecord `json:"history"`
	Question       *QuestionView  `json:"question,omitempty"`
}

// Snapshot captures the current state. No question is included before
// the session has started.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         s.phase,
		CurrentIndex:  s.currentIndex,
		QuestionCount: len(s.questions),
		TimeRemaining: s.timeRemaining,
		Score:         s.score,
		History:       s.History(),
	}
	if s.selected != nil {
		sel := *s.selected
		snap.SelectedAnswer = &sel
	}
	if s.phase == PhaseStart || len(s.questions) == 0 {
		return snap
	}

	q := s.questions[s.currentIndex]
	view := &QuestionView{
		ID:      q.ID,
		Prompt:  q.Prompt,
		Term:    q.Term,
		Options: append([]string(nil), q.Options...),
	}
	if s.selected != nil {
		correct := q.CorrectIndex
		view.CorrectIndex = &correct
		view.Explanation = q.Explanation
	}
	snap.Question = view
	return snap
}
