// Package session owns the state of one in-memory quiz attempt: the
// ordered question list, current index, score, per-question answers,
// and elapsed time. One attempt, one owner; transitions are
// start → answer → advance → complete, with reset back to idle.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/quizgen"
)

// State is the lifecycle phase of a quiz attempt.
type State string

const (
	StateIdle     State = "idle"
	StateActive   State = "active"
	StateComplete State = "complete"
)

// ErrNoQuestions is returned by Start when given an empty question list.
var ErrNoQuestions = errors.New("cannot start a quiz with no questions")

// Quiz is the quiz session state machine.
//
// The contract is one-call-at-a-time single-user invocation, but the
// elapsed-time ticker runs on its own goroutine, so all state is
// guarded by a mutex.
type Quiz struct {
	mu        sync.Mutex
	id        string
	state     State
	questions []quizgen.Question
	index     int
	score     int
	answers   map[int]string
	startedAt time.Time
	elapsed   int

	// stopTick is non-nil exactly while the ticker goroutine runs.
	// Closing it is the single cancellation path for the ticker.
	stopTick chan struct{}
}

// Snapshot is a point-in-time copy of the session state, safe to hand
// to the presentation layer.
type Snapshot struct {
	ID              string         `json:"id"`
	State           State          `json:"state"`
	CurrentQuestion int            `json:"currentQuestion"`
	TotalQuestions  int            `json:"totalQuestions"`
	Score           int            `json:"score"`
	TimeStarted     time.Time      `json:"timeStarted"`
	TimeElapsed     int            `json:"timeElapsed"`
	Answers         map[int]string `json:"answers"`
	IsComplete      bool           `json:"isComplete"`
}

// New returns an idle quiz session.
func New() *Quiz {
	return &Quiz{state: StateIdle, answers: map[int]string{}}
}

// Start begins a new attempt over the given questions. Any previous
// attempt is discarded. The question list must be non-empty.
func (q *Quiz) Start(questions []quizgen.Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopTickerLocked()
	q.id = uuid.New().String()
	q.state = StateActive
	q.questions = questions
	q.index = 0
	q.score = 0
	q.answers = map[int]string{}
	q.startedAt = time.Now()
	q.elapsed = 0
	q.startTickerLocked()
	return nil
}

// Answer records the submitted text for the current question and scores
// it. Comparison against the correct answer is whitespace-trimmed and
// case-insensitive; an empty submission is always incorrect. Outside the
// active state, or with no current question, Answer is a no-op: the
// presentation layer may race its timeout timer against user input.
func (q *Quiz) Answer(submitted string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != StateActive || q.index >= len(q.questions) {
		return
	}

	correct := q.questions[q.index].CorrectAnswer

	// Overwriting an answer is not expected in normal flow, but when it
	// happens the prior contribution to the score must come out first.
	if prev, answered := q.answers[q.index]; answered && answersEqual(prev, correct) {
		q.score--
	}

	q.answers[q.index] = submitted
	if answersEqual(submitted, correct) {
		q.score++
	}
}

// Advance moves past the current question. On the last question it
// completes the attempt and freezes elapsed time. A no-op outside the
// active state.
func (q *Quiz) Advance() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != StateActive {
		return
	}
	if q.index >= len(q.questions)-1 {
		q.completeLocked()
		return
	}
	q.index++
}

// Complete ends the attempt directly, e.g. on abandonment. Idempotent.
func (q *Quiz) Complete() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != StateActive {
		return
	}
	q.completeLocked()
}

// Reset discards the attempt from any state and returns to idle.
func (q *Quiz) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopTickerLocked()
	q.id = ""
	q.state = StateIdle
	q.questions = nil
	q.index = 0
	q.score = 0
	q.answers = map[int]string{}
	q.startedAt = time.Time{}
	q.elapsed = 0
}

// CurrentQuestion returns the question awaiting an answer, or nil when
// the session is not active.
func (q *Quiz) CurrentQuestion() *quizgen.Question {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != StateActive || q.index >= len(q.questions) {
		return nil
	}
	question := q.questions[q.index]
	return &question
}

// Questions returns a copy of the attempt's question list.
func (q *Quiz) Questions() []quizgen.Question {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]quizgen.Question, len(q.questions))
	copy(out, q.questions)
	return out
}

// State returns a snapshot of the session.
func (q *Quiz) State() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	answers := make(map[int]string, len(q.answers))
	for k, v := range q.answers {
		answers[k] = v
	}
	return Snapshot{
		ID:              q.id,
		State:           q.state,
		CurrentQuestion: q.index,
		TotalQuestions:  len(q.questions),
		Score:           q.score,
		TimeStarted:     q.startedAt,
		TimeElapsed:     q.elapsed,
		Answers:         answers,
		IsComplete:      q.state == StateComplete,
	}
}

func (q *Quiz) completeLocked() {
	q.state = StateComplete
	q.stopTickerLocked()
}

// startTickerLocked launches the 1-second elapsed-time accumulator.
// Its lifetime is bound to the active state: completeLocked and Reset
// are the only exits, and both close the channel exactly once.
func (q *Quiz) startTickerLocked() {
	stop := make(chan struct{})
	q.stopTick = stop

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				q.mu.Lock()
				if q.state == StateActive {
					q.elapsed++
				}
				q.mu.Unlock()
			}
		}
	}()
}

func (q *Quiz) stopTickerLocked() {
	if q.stopTick != nil {
		close(q.stopTick)
		q.stopTick = nil
	}
}

func answersEqual(submitted, correct string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}
	return strings.EqualFold(submitted, strings.TrimSpace(correct))
}
