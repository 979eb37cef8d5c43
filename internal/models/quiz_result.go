package models

import "time"

// QuizResult is a completed quiz session as persisted for history and karma.
// SessionID names the play-through, which changes when a session restarts.
type QuizResult struct {
	ID            int64        `json:"id"`
	SessionID     string       `json:"session_id"`
	ProfileID     *int64       `json:"profile_id,omitempty"`
	PlayerName    string       `json:"player_name"`
	Score         int          `json:"score"`
	CorrectCount  int          `json:"correct_count"`
	QuestionCount int          `json:"question_count"`
	CompletedAt   time.Time    `json:"completed_at"`
	Answers       []QuizAnswer `json:"answers,omitempty"`
}

type QuizAnswer struct {
	ID            int64 `json:"id"`
	ResultID      int64 `json:"result_id"`
	QuestionIndex int   `json:"question_index"`
	QuestionID    int   `json:"question_id"`
	SelectedIndex int   `json:"selected_index"`
	Correct       bool  `json:"correct"`
	TimedOut      bool  `json:"timed_out"`
	Points        int   `json:"points"`
}

type ResultFilter struct {
	ProfileID int64
	MinScore  int
	Limit     int
	Offset    int
}
