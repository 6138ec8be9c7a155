package quiz

import (
	"sort"

	"github.com/ShitalYadav18/SmartQuizzer-Quiz-Generator/internal/domain/question"
)

// Attempt is one recorded answer. Difficulty and topic are snapshots
// taken at attempt time, not references back to the question, so later
// edits to a question never rewrite historical analytics.
type Attempt struct {
	IsCorrect    bool                `json:"is_correct"`
	Difficulty   question.Difficulty `json:"difficulty"`
	Topic        string              `json:"topic"`
	ResponseTime float64             `json:"response_time"`
}

// All analytics functions below are pure and total: every one of them
// produces a defined result on an empty history.

// Accuracy returns the fraction of correct attempts, in [0, 1].
func Accuracy(history []Attempt) float64 {
	if len(history) == 0 {
		return 0.0
	}
	correct := 0
	for _, a := range history {
		if a.IsCorrect {
			correct++
		}
	}
	return float64(correct) / float64(len(history))
}

// AverageResponseTime returns the mean response time in seconds.
func AverageResponseTime(history []Attempt) float64 {
	if len(history) == 0 {
		return 0.0
	}
	var sum float64
	for _, a := range history {
		sum += a.ResponseTime
	}
	return sum / float64(len(history))
}

// TotalScore awards markPerQuestion for each correct attempt.
func TotalScore(history []Attempt, markPerQuestion int) int {
	score := 0
	for _, a := range history {
		if a.IsCorrect {
			score += markPerQuestion
		}
	}
	return score
}

// DifficultyProgression returns one difficulty label per attempt, in
// attempt order.
func DifficultyProgression(history []Attempt) []question.Difficulty {
	progression := make([]question.Difficulty, len(history))
	for i, a := range history {
		progression[i] = a.Difficulty
	}
	return progression
}

// DifficultyValue maps a label onto the 1-3 charting scale. Medium is
// the neutral default for anything unrecognized; downstream charts
// rely on that.
func DifficultyValue(d question.Difficulty) int {
	switch d {
	case question.Easy:
		return 1
	case question.Hard:
		return 3
	default:
		return 2
	}
}

// TopicPerformance aggregates attempts for one topic.
type TopicPerformance struct {
	Topic    string  `json:"topic"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// TopicWisePerformance groups the history by topic, preserving the
// order in which topics first appear. Attempts without a topic fall
// under "Unknown".
func TopicWisePerformance(history []Attempt) []TopicPerformance {
	byTopic := make(map[string]*TopicPerformance)
	var order []string

	for _, a := range history {
		topic := a.Topic
		if topic == "" {
			topic = "Unknown"
		}
		perf, ok := byTopic[topic]
		if !ok {
			perf = &TopicPerformance{Topic: topic}
			byTopic[topic] = perf
			order = append(order, topic)
		}
		perf.Attempts++
		if a.IsCorrect {
			perf.Correct++
		}
	}

	result := make([]TopicPerformance, 0, len(order))
	for _, topic := range order {
		perf := byTopic[topic]
		perf.Accuracy = float64(perf.Correct) / float64(perf.Attempts)
		result = append(result, *perf)
	}
	return result
}

// HardestTopics returns the k topics with the lowest accuracy in
// ascending order. Ties keep the grouping order, which is first
// appearance in the history.
func HardestTopics(performance []TopicPerformance, k int) []string {
	sorted := make([]TopicPerformance, len(performance))
	copy(sorted, performance)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Accuracy < sorted[j].Accuracy
	})

	if k < 0 {
		k = 0
	}
	if k > len(sorted) {
		k = len(sorted)
	}
	topics := make([]string, 0, k)
	for _, perf := range sorted[:k] {
		topics = append(topics, perf.Topic)
	}
	return topics
}

// Recommendation texts, keyed by overall accuracy.
const (
	recommendationLow  = "Overall accuracy is low. Revise basic topics first and practice more easy questions."
	recommendationMid  = "Performance is moderate. Revisit medium-level topics and review your incorrect attempts."
	recommendationHigh = "You are performing very well. Focus on more hard-level questions to achieve mastery."
)

// Recommendation picks one of three fixed study hints by accuracy
// threshold. An empty history has accuracy 0 and lands in the lowest
// tier.
func Recommendation(history []Attempt) string {
	acc := Accuracy(history)
	if acc < 0.5 {
		return recommendationLow
	}
	if acc < 0.8 {
		return recommendationMid
	}
	return recommendationHigh
}
