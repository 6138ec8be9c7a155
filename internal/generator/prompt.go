package generator

import "fmt"

const questionSystemPrompt = "You are a helpful assistant that outputs ONLY valid JSON when asked."

const classifySystemPrompt = "Return only one word: easy, medium, or hard."

// buildQuestionPrompt asks for a JSON array of MCQ records derived from
// one chunk of study material. The "Very important rules" keep answer
// and distractors the same kind of thing, which is what the cleaning
// step checks afterwards.
func buildQuestionPrompt(material string, count int) string {
	return fmt.Sprintf(`You are an expert exam question generator.

Given the following study material, generate %d questions in a JSON list.
Each item must have:
- question (string)
- answer (string)
- distractors (list of 3 strings)
- difficulty (one of: "easy", "medium", "hard")
- topic (short topic name)
- type (one of: "mcq", "true_false", "short_answer", "fill_blank")

Very important rules:
- For 'Who' questions, answer and all distractors must be PERSON names.
- For 'When' questions, answer and all distractors must be years or dates.
- For 'Where' questions, answer and all distractors must be places/locations.
- For 'What' or 'Which' questions, answer and distractors must be the same type of thing.
- Never mix different kinds of answers in the same question.

Return ONLY a valid JSON array, no extra text.

Study material:
"""%s"""`, count, material)
}

// buildClassifyPrompt asks for a single difficulty word for one
// question.
func buildClassifyPrompt(questionText string) string {
	return fmt.Sprintf(`Classify the difficulty of the following quiz question as easy, medium, or hard.
Answer with exactly one word.

Question:
%s`, questionText)
}
