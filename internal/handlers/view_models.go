package handlers

import (
	"sentenceclash/internal/quiz"
	"sentenceclash/internal/service"
)

type QuizViewData struct {
	Title          string
	CSRFToken      string
	State          *service.Snapshot
	QuestionNumber int
	Feedback       *FeedbackView
	LoadError      string
}

// FeedbackView is the verdict line plus per-tile coloring after a check
type FeedbackView struct {
	Correct bool           `json:"correct"`
	Message string         `json:"message"`
	Words   []WordFeedback `json:"words"`
}

type WordFeedback struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type ResultViewData struct {
	Title     string
	CSRFToken string
	Result    quiz.Result
	Message   string
	ImagePath string
}

// stateResponse is the JSON body of every API call that changes or reads the quiz
type stateResponse struct {
	*service.Snapshot
	Feedback *FeedbackView `json:"feedback,omitempty"`
	Moves    []quiz.Move   `json:"moves,omitempty"`
}

type resultResponse struct {
	quiz.Result
	MessageText string `json:"message_text"`
	ImagePath   string `json:"image_path"`
}

func messageText(tier quiz.MessageTier) string {
	switch tier {
	case quiz.MessagePerfect:
		return MsgPerfect
	case quiz.MessageGreat:
		return MsgGreat
	case quiz.MessageGood:
		return MsgGood
	default:
		return MsgEncouragement
	}
}

func imagePath(res quiz.Result) string {
	return "/static/images/" + res.Image
}

// newFeedback lists the words of the last check with their marks. The tiles may
// have moved since, so the words come from the evaluation, not the current answer.
func newFeedback(snap *service.Snapshot) *FeedbackView {
	ev := snap.Evaluation
	if ev == nil {
		return nil
	}

	fb := &FeedbackView{Correct: ev.Correct, Message: MsgIncorrect}
	if ev.Correct {
		fb.Message = MsgCorrect
	}
	for i, word := range ev.Words {
		fb.Words = append(fb.Words, WordFeedback{
			Text:    word,
			Correct: i < len(ev.PerWord) && ev.PerWord[i],
		})
	}
	return fb
}

func newStateResponse(snap *service.Snapshot) stateResponse {
	return stateResponse{Snapshot: snap, Feedback: newFeedback(snap)}
}

func newResultResponse(res quiz.Result) resultResponse {
	return resultResponse{Result: res, MessageText: messageText(res.Message), ImagePath: imagePath(res)}
}
