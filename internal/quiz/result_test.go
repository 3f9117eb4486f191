package quiz

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     string
	}{
		{100, "100"},
		{99.9, "90"},
		{90, "90"},
		{87.5, "80"},
		{83, "80"},
		{80, "80"},
		{75, "70"},
		{62.5, "60"},
		{50, "50"},
		{40, "40"},
		{37.5, "30"},
		{25, "30"},
		{24.9, "20"},
		{12.5, "20"},
		{0, "00"},
	}

	for _, tt := range tests {
		if got := TierFor(tt.accuracy); got != tt.want {
			t.Errorf("TierFor(%v) = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}

func TestMessageFor(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     MessageTier
	}{
		{100, MessagePerfect},
		{87.5, MessageGreat},
		{83, MessageGreat},
		{80, MessageGreat},
		{79.9, MessageGood},
		{50, MessageGood},
		{49.9, MessageEncouragement},
		{0, MessageEncouragement},
	}

	for _, tt := range tests {
		if got := MessageFor(tt.accuracy); got != tt.want {
			t.Errorf("MessageFor(%v) = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}

func TestFinalAccuracy(t *testing.T) {
	if got := FinalAccuracy(7, 8); got != 87.5 {
		t.Errorf("FinalAccuracy(7, 8) = %v, want 87.5", got)
	}
	if got := FinalAccuracy(0, 0); got != 0 {
		t.Errorf("FinalAccuracy(0, 0) = %v, want 0", got)
	}
}

func TestLiveAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		index   int
		want    int
	}{
		{name: "first question unanswered", correct: 0, index: 0, want: 0},
		{name: "first question right", correct: 1, index: 0, want: 100},
		{name: "counts the current question", correct: 1, index: 1, want: 50},
		{name: "rounds to nearest", correct: 2, index: 2, want: 67},
		{name: "rounds down", correct: 1, index: 2, want: 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LiveAccuracy(tt.correct, tt.index); got != tt.want {
				t.Errorf("LiveAccuracy(%d, %d) = %d, want %d", tt.correct, tt.index, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	r := Summarize(7, 8)
	if r.Percent != 88 {
		t.Errorf("Percent = %d, want 88", r.Percent)
	}
	if r.Tier != "80" || r.Image != "80.png" {
		t.Errorf("Tier = %q Image = %q, want 80 / 80.png", r.Tier, r.Image)
	}
	if r.Message != MessageGreat {
		t.Errorf("Message = %q, want %q", r.Message, MessageGreat)
	}
}
