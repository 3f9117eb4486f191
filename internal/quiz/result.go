package quiz

import "math"

// MessageTier is the encouragement bucket shown on the results screen
type MessageTier string

const (
	MessagePerfect       MessageTier = "perfect"
	MessageGreat         MessageTier = "great"
	MessageGood          MessageTier = "good"
	MessageEncouragement MessageTier = "encouragement"
)

// tierThresholds is checked top-down; the first floor the accuracy reaches wins.
// 100 and 0 are handled as exact values before the table.
var tierThresholds = []struct {
	floor float64
	tier  string
}{
	{90, "90"},
	{80, "80"},
	{70, "70"},
	{60, "60"},
	{50, "50"},
	{40, "40"},
	{25, "30"},
}

// FinalAccuracy is the share of questions answered right on the first try, in percent
func FinalAccuracy(correctFirstTry, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correctFirstTry) / float64(total) * 100
}

// LiveAccuracy is the running accuracy shown during play, rounded to an integer.
// The denominator counts the current question even before it has been answered.
func LiveAccuracy(correctFirstTry, currentIndex int) int {
	attempted := currentIndex + 1
	if attempted <= 0 {
		return 0
	}
	return int(math.Round(float64(correctFirstTry) / float64(attempted) * 100))
}

// TierFor maps a final accuracy to its illustration tier
func TierFor(accuracy float64) string {
	if accuracy >= 100 {
		return "100"
	}
	for _, t := range tierThresholds {
		if accuracy >= t.floor {
			return t.tier
		}
	}
	if accuracy > 0 {
		return "20"
	}
	return "00"
}

// TierImage is the illustration file for a tier
func TierImage(tier string) string {
	return tier + ".png"
}

// MessageFor maps a final accuracy to its message tier
func MessageFor(accuracy float64) MessageTier {
	switch {
	case accuracy >= 100:
		return MessagePerfect
	case accuracy >= 80:
		return MessageGreat
	case accuracy >= 50:
		return MessageGood
	default:
		return MessageEncouragement
	}
}

// Result summarizes a finished session
type Result struct {
	CorrectFirstTry int         `json:"correct_first_try"`
	Total           int         `json:"total"`
	Accuracy        float64     `json:"accuracy"`
	Percent         int         `json:"percent"`
	Tier            string      `json:"tier"`
	Image           string      `json:"image"`
	Message         MessageTier `json:"message"`
}

// Summarize builds the result screen data for a final score
func Summarize(correctFirstTry, total int) Result {
	acc := FinalAccuracy(correctFirstTry, total)
	tier := TierFor(acc)
	return Result{
		CorrectFirstTry: correctFirstTry,
		Total:           total,
		Accuracy:        acc,
		Percent:         int(math.Round(acc)),
		Tier:            tier,
		Image:           TierImage(tier),
		Message:         MessageFor(acc),
	}
}
