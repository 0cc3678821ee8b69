package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagQuizAnswers bool

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Print the quiz catalog",
	Long: `Print the questions used by "Save Me!" life recovery.

Uses the built-in catalog unless --quiz points at a YAML file:

  study: "Text shown after a wrong answer."
  questions:
    - prompt: "What is the zero value of a pointer?"
      correct: "nil"
      distractors: ["0", "\"\"", "false"]

Examples:
  kingrun quiz
  kingrun quiz --answers
  kingrun quiz --quiz ./go-quiz.yaml`,
	Args: cobra.NoArgs,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().BoolVar(&flagQuizAnswers, "answers", false, "Mark the correct option")
}

func runQuiz(_ *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	for i, q := range catalog.Questions {
		fmt.Printf("%d. %s\n", i+1, q.Prompt)
		for j, opt := range q.Options() {
			mark := " "
			if flagQuizAnswers && q.IsCorrect(opt) {
				mark = "*"
			}
			fmt.Printf("   %s %d) %s\n", mark, j+1, opt)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("-", 40))
	fmt.Println(catalog.Study)
	return nil
}
