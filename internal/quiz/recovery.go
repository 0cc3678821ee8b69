package quiz

import (
	"math/rand"
)

// NoAnswer is passed to Attempt.Answer when the player dismissed the quiz
// without choosing an option.
const NoAnswer = -1

// Messages shown to the player after answering.
const (
	CorrectMessage   = "Correct! You earned an extra life."
	IncorrectMessage = "Incorrect answer. Study this paragraph for better understanding."
)

// Outcome is the result of one recovery attempt.
type Outcome struct {
	Granted bool
	Message string
	Study   string // set only when the answer was wrong
}

// Recovery picks questions from a catalog using an injected random source.
type Recovery struct {
	catalog Catalog
	rng     *rand.Rand
}

// NewRecovery creates a recovery picker. The same seed yields the same sequence
// of questions.
func NewRecovery(catalog Catalog, seed int64) *Recovery {
	return &Recovery{
		catalog: catalog,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Catalog returns the catalog questions are drawn from.
func (r *Recovery) Catalog() Catalog {
	return r.catalog
}

// Begin selects a question uniformly at random and opens an attempt for it.
// It returns nil when the catalog is empty.
func (r *Recovery) Begin() *Attempt {
	if len(r.catalog.Questions) == 0 {
		return nil
	}
	q := r.catalog.Questions[r.rng.Intn(len(r.catalog.Questions))]
	return &Attempt{Question: q, study: r.catalog.Study}
}

// Attempt is a single presented question awaiting an answer.
type Attempt struct {
	Question Question
	study    string
}

// Options returns the answers in display order.
func (a *Attempt) Options() []string {
	return a.Question.Options()
}

// Answer grades the option at index choice (as returned by Options). NoAnswer
// or an out-of-range index counts as a wrong answer.
func (a *Attempt) Answer(choice int) Outcome {
	opts := a.Options()
	if choice >= 0 && choice < len(opts) && a.Question.IsCorrect(opts[choice]) {
		return Outcome{Granted: true, Message: CorrectMessage}
	}
	return Outcome{Message: IncorrectMessage, Study: a.study}
}
