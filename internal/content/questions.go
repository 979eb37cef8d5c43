// Package content holds the fixed material served by the arena, from the quiz
// bank to the reading stories and history timeline.
package content

import (
	"fmt"

	"github.com/dhanush7123/sanskrit-spark/internal/quiz"
)

// OptionCount is the number of choices every question must offer.
const OptionCount = 4

var questions = []quiz.Question{
	{
		ID:           1,
		Prompt:       "Which emotion does the concept of (शान्त रस / Shanta Rasa) represent?",
		Term:         "शान्त रस",
		Options:      []string{"Anger", "Peace & Serenity", "Love", "Fear"},
		CorrectIndex: 1,
		Explanation:  "Shanta Rasa represents peace, tranquility, and spiritual serenity in Sanskrit aesthetics.",
	},
	{
		ID:           2,
		Prompt:       "What does (धर्म / Dharma) fundamentally mean?",
		Term:         "धर्म",
		Options:      []string{"Religion", "Cosmic Order & Duty", "Prayer", "Meditation"},
		CorrectIndex: 1,
		Explanation:  "Dharma encompasses cosmic law, moral order, duty, and righteousness.",
	},
	{
		ID:           3,
		Prompt:       "The term (अहिंसा / Ahimsa) translates to?",
		Term:         "अहिंसा",
		Options:      []string{"War", "Victory", "Non-violence", "Strength"},
		CorrectIndex: 2,
		Explanation:  "Ahimsa means non-violence and non-harm to any living being.",
	},
	{
		ID:           4,
		Prompt:       "What is (योग / Yoga) derived from in Sanskrit?",
		Term:         "योग",
		Options:      []string{"Yuj (to unite)", "Yog (to fight)", "Yak (to speak)", "Yam (to control)"},
		CorrectIndex: 0,
		Explanation:  "Yoga comes from 'Yuj' meaning to unite, yoke, or join - representing union of mind, body, and spirit.",
	},
	{
		ID:           5,
		Prompt:       "The (गुरुकुल / Gurukul) system refers to?",
		Term:         "गुरुकुल",
		Options:      []string{"Temple worship", "Ancient education system", "Royal court", "Medical practice"},
		CorrectIndex: 1,
		Explanation:  "Gurukul was the traditional residential schooling system where students lived with the Guru.",
	},
	{
		ID:           6,
		Prompt:       "What does (नमस्ते / Namaste) literally mean?",
		Term:         "नमस्ते",
		Options:      []string{"Good morning", "I bow to you", "Be happy", "Welcome"},
		CorrectIndex: 1,
		Explanation:  "Namaste comes from 'Namah' (bow) + 'Te' (to you), meaning 'I bow to the divine in you.'",
	},
	{
		ID:           7,
		Prompt:       "(कर्म / Karma) in its original sense means?",
		Term:         "कर्म",
		Options:      []string{"Destiny", "Action", "Punishment", "Reward"},
		CorrectIndex: 1,
		Explanation:  "Karma simply means 'action' - the law that every action has consequences.",
	},
	{
		ID:           8,
		Prompt:       "The (वेद / Veda) literally translates to?",
		Term:         "वेद",
		Options:      []string{"Book", "Song", "Knowledge", "Story"},
		CorrectIndex: 2,
		Explanation:  "Veda comes from 'Vid' meaning to know - the Vedas are 'knowledge' texts.",
	},
}

// Questions returns a copy of the reference question bank.
func Questions() []quiz.Question {
	out := make([]quiz.Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// SeedLeaderboard is the board shown before anyone has played.
func SeedLeaderboard() []quiz.RankedEntry {
	return []quiz.RankedEntry{
		{Rank: 1, Name: "Arjuna", Score: 850},
		{Rank: 2, Name: "Saraswati", Score: 780},
		{Rank: 3, Name: "Valmiki", Score: 720},
		{Rank: 4, Name: "Shakuntala", Score: 650},
		{Rank: 5, Name: "Bharat", Score: 600},
	}
}

// Validate checks that a question bank can drive a session.
func Validate(qs []quiz.Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("question bank is empty")
	}
	seen := make(map[int]bool, len(qs))
	for i, q := range qs {
		if seen[q.ID] {
			return fmt.Errorf("question %d: duplicate id %d", i, q.ID)
		}
		seen[q.ID] = true
		if len(q.Options) != OptionCount {
			return fmt.Errorf("question %d: expected %d options, got %d", q.ID, OptionCount, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
			return fmt.Errorf("question %d: correct index %d out of range", q.ID, q.CorrectIndex)
		}
	}
	return nil
}
