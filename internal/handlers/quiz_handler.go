package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"sentenceclash/internal/quiz"
	"sentenceclash/internal/security"
	"sentenceclash/internal/service"
)

const maxGestureBody = 64 << 10

// QuizHandler serves the quiz page and its JSON API
type QuizHandler struct {
	quizService *service.QuizService
	csrf        *security.CSRFGenerator
	templates   *template.Template
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService, csrf *security.CSRFGenerator, templates *template.Template) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		csrf:        csrf,
		templates:   templates,
	}
}

// ShowQuiz renders the current question, starting a session on the first visit,
// or the results once the session is finished
func (h *QuizHandler) ShowQuiz(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerID(r.Context())

	snap, err := h.quizService.State(playerID)
	if err == nil && snap.State == quiz.NotStarted {
		snap, err = h.quizService.Start(playerID)
	}
	if err != nil {
		status, msg := classifyError(err)
		if status != http.StatusServiceUnavailable {
			respondWithError(w, status, msg, "Failed to load quiz", err)
			return
		}
		h.render(w, status, "quiz.tmpl", QuizViewData{Title: "Sentence Quiz", LoadError: msg})
		return
	}

	if snap.State == quiz.Finished && snap.Result != nil {
		h.render(w, http.StatusOK, "results.tmpl", ResultViewData{
			Title:     "Results",
			CSRFToken: h.csrf.Token(playerID),
			Result:    *snap.Result,
			Message:   messageText(snap.Result.Message),
			ImagePath: imagePath(*snap.Result),
		})
		return
	}

	h.render(w, http.StatusOK, "quiz.tmpl", QuizViewData{
		Title:          "Sentence Quiz",
		CSRFToken:      h.csrf.Token(playerID),
		State:          snap,
		QuestionNumber: snap.Index + 1,
		Feedback:       newFeedback(snap),
	})
}

func (h *QuizHandler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
	}
}

// redirectHome finishes a form post, reporting failures the way the page would
func (h *QuizHandler) redirectHome(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		status, msg := classifyError(err)
		if status != http.StatusConflict {
			respondWithError(w, status, msg, "Quiz action failed", err)
			return
		}
		// A stale page clicked a disabled button; show the current state
		log.Printf("Ignored stale quiz action: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Restart handles POST /quiz/restart
func (h *QuizHandler) Restart(w http.ResponseWriter, r *http.Request) {
	_, err := h.quizService.Start(GetPlayerID(r.Context()))
	h.redirectHome(w, r, err)
}

// MoveToken handles POST /quiz/move, moving one tile by tapping it
func (h *QuizHandler) MoveToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	tokenID, err := strconv.Atoi(r.FormValue("token_id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "Invalid token_id", err)
		return
	}
	zone, err := quiz.ParseZone(r.FormValue("to"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "Invalid target zone", err)
		return
	}

	_, err = h.quizService.Move(GetPlayerID(r.Context()), tokenID, zone)
	h.redirectHome(w, r, err)
}

// Check handles POST /quiz/check
func (h *QuizHandler) Check(w http.ResponseWriter, r *http.Request) {
	_, _, err := h.quizService.Check(GetPlayerID(r.Context()))
	h.redirectHome(w, r, err)
}

// Next handles POST /quiz/next
func (h *QuizHandler) Next(w http.ResponseWriter, r *http.Request) {
	_, err := h.quizService.Advance(GetPlayerID(r.Context()))
	h.redirectHome(w, r, err)
}

func (h *QuizHandler) respondAPIError(w http.ResponseWriter, err error) {
	status, msg := classifyError(err)
	if status == http.StatusConflict || status == http.StatusBadRequest {
		// Client mistakes are not logged
		err = nil
	}
	respondWithJSONError(w, status, msg, "Quiz API call failed", err)
}

// GetState handles GET /api/quiz
func (h *QuizHandler) GetState(w http.ResponseWriter, r *http.Request) {
	snap, err := h.quizService.State(GetPlayerID(r.Context()))
	if err != nil {
		h.respondAPIError(w, err)
		return
	}
	w.Header().Set(security.CSRFHeader, h.csrf.Token(GetPlayerID(r.Context())))
	respondJSON(w, http.StatusOK, newStateResponse(snap))
}

// StartAPI handles POST /api/quiz/start
func (h *QuizHandler) StartAPI(w http.ResponseWriter, r *http.Request) {
	snap, err := h.quizService.Start(GetPlayerID(r.Context()))
	if err != nil {
		h.respondAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newStateResponse(snap))
}

// Gestures handles POST /api/quiz/gestures
func (h *QuizHandler) Gestures(w http.ResponseWriter, r *http.Request) {
	var batch service.GestureBatch
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGestureBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&batch); err != nil {
		respondWithJSONError(w, http.StatusBadRequest, ErrInvalidGestures, "", nil)
		return
	}

	moves, snap, err := h.quizService.ApplyGestures(GetPlayerID(r.Context()), batch)
	if err != nil {
		h.respondAPIError(w, err)
		return
	}
	resp := newStateResponse(snap)
	resp.Moves = moves
	respondJSON(w, http.StatusOK, resp)
}

// CheckAPI handles POST /api/quiz/check
func (h *QuizHandler) CheckAPI(w http.ResponseWriter, r *http.Request) {
	_, snap, err := h.quizService.Check(GetPlayerID(r.Context()))
	if err != nil {
		h.respondAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newStateResponse(snap))
}

// NextAPI handles POST /api/quiz/next
func (h *QuizHandler) NextAPI(w http.ResponseWriter, r *http.Request) {
	snap, err := h.quizService.Advance(GetPlayerID(r.Context()))
	if err != nil {
		h.respondAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newStateResponse(snap))
}

// ResultAPI handles GET /api/quiz/result
func (h *QuizHandler) ResultAPI(w http.ResponseWriter, r *http.Request) {
	res, err := h.quizService.Result(GetPlayerID(r.Context()))
	if err != nil {
		h.respondAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newResultResponse(*res))
}

// Health handles GET /healthz
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

