package quiz

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "strips punctuation and case", input: "I am a cat.", want: "i am a cat"},
		{name: "collapses whitespace", input: "  Is   it\ta   dog? ", want: "is it a dog"},
		{name: "keeps apostrophes", input: "It's mine!", want: "it's mine"},
		{name: "comma inside sentence", input: "Yes, I do.", want: "yes i do"},
		{name: "punctuation only", input: ".,?!", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"I am a cat.",
		"  Hello,   WORLD !! ",
		"a . b , c ? d ! e",
		"\tTabs\tand\nnewlines\n",
		"Ünïcödé Wörds.",
		"",
		"!!!",
	}
	for _, s := range inputs {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("  It is\t a   cat. ")
	want := []string{"It", "is", "a", "cat."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
	if got := Tokenize("   "); len(got) != 0 {
		t.Errorf("Tokenize(blank) = %v, want no tokens", got)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		answer      []string
		target      string
		wantCorrect bool
		wantPerWord []bool
	}{
		{
			name:        "exact answer",
			answer:      []string{"I", "am", "a", "cat."},
			target:      "I am a cat.",
			wantCorrect: true,
			wantPerWord: []bool{true, true, true, true},
		},
		{
			name:        "case and punctuation differ",
			answer:      []string{"i", "AM", "a", "CAT"},
			target:      "I am a cat.",
			wantCorrect: true,
			wantPerWord: []bool{true, true, true, true},
		},
		{
			name:        "swapped words",
			answer:      []string{"I", "a", "am", "cat."},
			target:      "I am a cat.",
			wantCorrect: false,
			wantPerWord: []bool{true, false, false, true},
		},
		{
			name:        "positional match is case sensitive",
			answer:      []string{"i", "am", "cat."},
			target:      "I am a cat.",
			wantCorrect: false,
			wantPerWord: []bool{false, true, false},
		},
		{
			name:        "extra words past the canonical length",
			answer:      []string{"I", "am", "a", "cat.", "cat."},
			target:      "I am a cat.",
			wantCorrect: false,
			wantPerWord: []bool{true, true, true, true, false},
		},
		{
			name:        "empty answer",
			answer:      []string{},
			target:      "I am a cat.",
			wantCorrect: false,
			wantPerWord: []bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Evaluate(tt.answer, tt.target)
			if ev.Correct != tt.wantCorrect {
				t.Errorf("Correct = %v, want %v", ev.Correct, tt.wantCorrect)
			}
			if !reflect.DeepEqual(ev.PerWord, tt.wantPerWord) {
				t.Errorf("PerWord = %v, want %v", ev.PerWord, tt.wantPerWord)
			}
			if !reflect.DeepEqual(ev.Words, tt.answer) {
				t.Errorf("Words = %v, want %v", ev.Words, tt.answer)
			}
		})
	}
}

func TestEvaluateKeepsCheckedWords(t *testing.T) {
	answer := []string{"I", "a", "am", "cat."}
	ev := Evaluate(answer, "I am a cat.")

	answer[0] = "cat."
	if ev.Words[0] != "I" {
		t.Errorf("Words[0] = %q after the answer changed, want %q", ev.Words[0], "I")
	}
}
