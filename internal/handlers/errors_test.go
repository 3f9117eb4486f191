package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"sentenceclash/internal/quiz"
	"sentenceclash/internal/service"
)

func TestRespondWithErrorWritesStatusAndBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, 418, "Teapot", "", nil)

	if recorder.Code != 418 {
		t.Fatalf("expected status 418, got %d", recorder.Code)
	}

	body := strings.TrimSpace(recorder.Body.String())
	if body != "Teapot" {
		t.Fatalf("expected body 'Teapot', got %q", body)
	}
}

func TestRespondWithErrorLogsMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := log.Default()
	originalOutput := logger.Writer()
	logger.SetOutput(&buf)
	defer logger.SetOutput(originalOutput)

	recorder := httptest.NewRecorder()
	err := errors.New("boom")

	respondWithError(recorder, 500, "Internal server error", "", err)

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Internal server error") {
		t.Fatalf("expected log to include user message, got %q", logOutput)
	}
	if !strings.Contains(logOutput, "boom") {
		t.Fatalf("expected log to include error, got %q", logOutput)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty data", err: quiz.ErrEmptyData, want: 503},
		{name: "wrapped empty data", err: fmt.Errorf("%w: timeout", quiz.ErrEmptyData), want: 503},
		{name: "unknown token", err: fmt.Errorf("%w: 9", quiz.ErrUnknownToken), want: 400},
		{name: "bad source", err: service.ErrUnknownSource, want: 400},
		{name: "disabled", err: quiz.ErrActionDisabled, want: 409},
		{name: "not finished", err: quiz.ErrNotFinished, want: 409},
		{name: "out of range", err: quiz.ErrOutOfRange, want: 409},
		{name: "other", err: errors.New("disk full"), want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := classifyError(tt.err); got != tt.want {
				t.Errorf("classifyError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
