// Package quiz drives a single quiz attempt from configuration through
// question-by-question answering to a scored summary. The machine is
// deterministic: pacing delays between questions belong to the UI, which
// calls Advance explicitly.
package quiz

import (
	"fmt"

	"github.com/nuwanhe/smartsl/internal/domain"
)

// Phase is the lifecycle state of a quiz attempt.
type Phase string

const (
	// PhaseBuilding is the initial state: grade/subject/unit/language selection.
	PhaseBuilding Phase = "building"
	// PhaseGenerating means a generation request is in flight.
	PhaseGenerating Phase = "generating"
	// PhaseInProgress means questions are loaded and being answered.
	PhaseInProgress Phase = "in_progress"
	// PhaseFinished is terminal: all questions answered, score available.
	PhaseFinished Phase = "finished"
)

// Setup holds the quiz configuration chosen while building.
type Setup struct {
	Grade    domain.Grade
	Subject  domain.Subject
	Unit     string
	Language domain.Language
}

// Machine is the quiz session state machine. Answering is strictly
// sequential: no skipping, no revisiting a prior answer.
type Machine struct {
	phase     Phase
	setup     Setup
	questions []domain.QuizQuestion
	current   int
	answers   map[int]int
}

// NewMachine creates a Machine in the building phase.
func NewMachine() *Machine {
	return &Machine{phase: PhaseBuilding, answers: map[int]int{}}
}

// Phase returns the current lifecycle phase.
func (m *Machine) Phase() Phase { return m.phase }

// Setup returns the configuration captured at Start.
func (m *Machine) Setup() Setup { return m.setup }

// Start moves building → generating. It is guarded by a non-empty unit;
// a blank unit leaves the machine in the building phase.
func (m *Machine) Start(setup Setup) error {
	if m.phase != PhaseBuilding {
		return fmt.Errorf("cannot start quiz from phase %s", m.phase)
	}
	if setup.Unit == "" {
		return fmt.Errorf("unit is required")
	}
	m.setup = setup
	m.phase = PhaseGenerating
	return nil
}

// Loaded moves generating → in-progress with the cursor at the first
// question and no answers recorded.
func (m *Machine) Loaded(questions []domain.QuizQuestion) error {
	if m.phase != PhaseGenerating {
		return fmt.Errorf("cannot load questions in phase %s", m.phase)
	}
	if len(questions) == 0 {
		return fmt.Errorf("no questions to load")
	}
	m.questions = questions
	m.current = 0
	m.answers = map[int]int{}
	m.phase = PhaseInProgress
	return nil
}

// Fail moves generating → building. No partial quiz is retained; the
// caller surfaces the error to the user.
func (m *Machine) Fail() {
	if m.phase == PhaseGenerating {
		m.phase = PhaseBuilding
	}
}

// Answer records the selected option for the current question. Answering
// the last question finishes the session; otherwise the cursor stays put
// until the UI calls Advance after its feedback pause.
func (m *Machine) Answer(option int) error {
	if m.phase != PhaseInProgress {
		return fmt.Errorf("cannot answer in phase %s", m.phase)
	}
	if option < 0 || option >= len(m.questions[m.current].Options) {
		return fmt.Errorf("option %d out of range", option)
	}
	if _, done := m.answers[m.current]; done {
		return fmt.Errorf("question %d already answered", m.current+1)
	}
	m.answers[m.current] = option
	if m.current == len(m.questions)-1 {
		m.phase = PhaseFinished
	}
	return nil
}

// Advance moves the cursor to the next question. It is valid only after
// the current question has been answered and the session is not finished.
func (m *Machine) Advance() error {
	if m.phase != PhaseInProgress {
		return fmt.Errorf("cannot advance in phase %s", m.phase)
	}
	if _, done := m.answers[m.current]; !done {
		return fmt.Errorf("question %d not answered yet", m.current+1)
	}
	m.current++
	return nil
}

// Reset returns to the building phase, discarding questions and answers.
func (m *Machine) Reset() {
	m.phase = PhaseBuilding
	m.questions = nil
	m.current = 0
	m.answers = map[int]int{}
}

// Current returns the cursor index and the question under it.
func (m *Machine) Current() (int, domain.QuizQuestion) {
	if m.current >= len(m.questions) {
		return m.current, domain.QuizQuestion{}
	}
	return m.current, m.questions[m.current]
}

// Total returns the number of loaded questions.
func (m *Machine) Total() int { return len(m.questions) }

// AnswerFor returns the recorded answer for question i, if any.
func (m *Machine) AnswerFor(i int) (int, bool) {
	a, ok := m.answers[i]
	return a, ok
}

// Score counts the questions whose recorded answer matches the correct
// index.
func (m *Machine) Score() int {
	score := 0
	for i, q := range m.questions {
		if a, ok := m.answers[i]; ok && a == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// Stars maps the score to a 0-5 rating: ceil(score/total*5).
func (m *Machine) Stars() int {
	total := len(m.questions)
	if total == 0 {
		return 0
	}
	return (m.Score()*5 + total - 1) / total
}
