// Package quiz implements the life-recovery quiz: a static question catalog and
// a seedable picker that grants a life for a correct answer.
package quiz

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyCatalog is returned when a catalog holds no questions.
	ErrEmptyCatalog = errors.New("quiz catalog is empty")
	// ErrInvalidQuestion is returned when a question is missing text or has the
	// wrong number of distractors.
	ErrInvalidQuestion = errors.New("invalid quiz question")
)

// DistractorCount is the number of wrong answers each question carries.
const DistractorCount = 3

// Question is a multiple-choice question with exactly one correct answer.
type Question struct {
	Prompt      string   `yaml:"prompt"`
	Correct     string   `yaml:"correct"`
	Distractors []string `yaml:"distractors"`
}

// Options returns the answers in display order: the correct answer first,
// followed by the distractors as listed. Options are not shuffled.
func (q Question) Options() []string {
	opts := make([]string, 0, 1+len(q.Distractors))
	opts = append(opts, q.Correct)
	opts = append(opts, q.Distractors...)
	return opts
}

// IsCorrect reports whether the option text matches the correct answer.
func (q Question) IsCorrect(option string) bool {
	return option == q.Correct
}

func (q Question) validate() error {
	if strings.TrimSpace(q.Prompt) == "" || strings.TrimSpace(q.Correct) == "" {
		return fmt.Errorf("%w: prompt and correct answer are required", ErrInvalidQuestion)
	}
	if len(q.Distractors) != DistractorCount {
		return fmt.Errorf("%w: %q has %d distractors, want %d",
			ErrInvalidQuestion, q.Prompt, len(q.Distractors), DistractorCount)
	}
	return nil
}

// Catalog is an immutable set of questions plus the study text shown after a
// wrong answer.
type Catalog struct {
	Questions []Question `yaml:"questions"`
	Study     string     `yaml:"study"`
}

// Validate checks every question in the catalog.
func (c Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return ErrEmptyCatalog
	}
	for i, q := range c.Questions {
		if err := q.validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

// LoadCatalog reads a YAML catalog from path. A catalog without study text
// inherits the built-in paragraph.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("quiz: cannot read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("quiz: cannot parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("quiz: %w", err)
	}
	if strings.TrimSpace(c.Study) == "" {
		c.Study = defaultStudy
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog about Python strings.
func DefaultCatalog() Catalog {
	questions := make([]Question, len(defaultQuestions))
	for i, q := range defaultQuestions {
		q.Distractors = append([]string(nil), q.Distractors...)
		questions[i] = q
	}
	return Catalog{Questions: questions, Study: defaultStudy}
}

var defaultQuestions = []Question{
	{
		Prompt:      "What are Python strings?",
		Correct:     "Immutable sequences of characters",
		Distractors: []string{"Mutable data types", "Numerical values", "Boolean variables"},
	},
	{
		Prompt:  "Which of the following is NOT true about Python strings?",
		Correct: "They can be changed after creation",
		Distractors: []string{
			"They support indexing and slicing",
			"They can be enclosed in single or double quotes",
			"They are sequences of characters",
		},
	},
	{
		Prompt:  "What does string concatenation mean in Python?",
		Correct: "Combining two or more strings into one",
		Distractors: []string{
			"Breaking down a string into substrings",
			"Removing spaces from a string",
			"Replacing characters in a string",
		},
	},
	{
		Prompt:      "Which method allows dynamic and formatted output with strings in Python?",
		Correct:     "format()",
		Distractors: []string{"split()", "replace()", "lower()"},
	},
	{
		Prompt:      "What operation is performed by the '+' operator with strings in Python?",
		Correct:     "String concatenation",
		Distractors: []string{"String splitting", "String formatting", "String comparison"},
	},
}

const defaultStudy = `Python strings are sequences of characters, enclosed within either single quotes (' ') or double quotes (" "). ` +
	`Strings are immutable, meaning they cannot be changed after creation. However, various string methods allow manipulation of string data. ` +
	`Python provides powerful string formatting capabilities, including the format() method and f-strings, which enable dynamic and formatted output. ` +
	`Additionally, strings support indexing and slicing operations to access individual characters or substrings. ` +
	`String concatenation can be performed using the '+' operator. ` +
	`Python strings are extensively used in tasks such as data processing, text manipulation, and user interaction in applications.`
