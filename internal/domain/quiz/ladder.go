package quiz

import "github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"

// InitialDifficulty is where every adaptive session starts.
const InitialDifficulty = question.Medium

// NextDifficulty advances the ladder one step on a correct answer and
// regresses one step on an incorrect one, clamped to the easy/hard
// bounds. The policy is memoryless: only the current level and the
// latest outcome matter, never streaks or the full history. A level the
// ladder does not know is treated as medium before stepping.
func NextDifficulty(current question.Difficulty, wasCorrect bool) question.Difficulty {
	levels := question.Levels()

	idx := 1 // medium for anything unrecognized
	for i, l := range levels {
		if l == current {
			idx = i
			break
		}
	}

	if wasCorrect && idx < len(levels)-1 {
		idx++
	} else if !wasCorrect && idx > 0 {
		idx--
	}
	return levels[idx]
}
