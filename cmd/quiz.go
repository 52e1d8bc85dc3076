package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/college-compass/internal/careers"
	"github.com/spigell/college-compass/internal/logger"
	"github.com/spigell/college-compass/internal/render"
)

const (
	PromptBack   = "back"
	PromptRetake = "Retake the quiz"
	PromptExit   = "Exit"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the career quiz and get career recommendations",
	Run: func(cmd *cobra.Command, _ []string) {
		runQuiz(cmd)
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)

	quizCmd.Flags().StringSlice("answers", nil, "answer tags in question order instead of prompts, e.g. stem,social (empty entries skip a question)")
	quizCmd.Flags().StringP("file", "f", "", "a quiz file replacing the built-in quiz")

	viper.BindPFlag("quiz.file", quizCmd.Flags().Lookup("file"))
}

func runQuiz(cmd *cobra.Command) {
	log, config := setup()

	quiz, err := careers.LoadQuiz(config.Quiz.File)
	if err != nil {
		log.Fatal("loading the quiz", zap.Error(err))
	}

	session := careers.NewSession(quiz)
	log = logger.WithSession(log, session.ID)
	out := render.New(os.Stdout)

	log.Debug("quiz loaded",
		zap.Int("questions", quiz.Len()),
		zap.Int("catalog_tags", quiz.Catalog.Len()),
	)

	answers, _ := cmd.Flags().GetStringSlice("answers")
	if len(answers) > 0 {
		if err := applyAnswers(session, quiz, answers, log); err != nil {
			log.Fatal("applying answers", zap.Error(err))
		}
		if err := out.Careers(session.Recommendations()); err != nil {
			log.Fatal("rendering recommendations", zap.Error(err))
		}
		return
	}

	for {
		if err := askQuestions(session, quiz); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			log.Fatal("exiting", zap.Error(err))
		}

		log.Info("quiz completed", zap.Int("answered", len(session.Answers())))

		if err := out.Careers(session.Recommendations()); err != nil {
			log.Fatal("rendering recommendations", zap.Error(err))
		}

		prompt := promptui.Select{
			Label: "What next?",
			Items: []string{PromptRetake, PromptExit},
		}
		_, action, err := prompt.Run()
		if err != nil || action == PromptExit {
			return
		}

		session.Reset()
	}
}

// applyAnswers records scripted answers: one tag per question, in order.
func applyAnswers(session *careers.Session, quiz *careers.Quiz, answers []string, log *zap.Logger) error {
	if len(answers) > quiz.Len() {
		return fmt.Errorf("got %d answers for %d questions", len(answers), quiz.Len())
	}

	for i, tag := range answers {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}

		if _, ok := quiz.Catalog.Titles(tag); !ok {
			log.Warn("answer tag has no careers in the catalog",
				zap.Int("question", i+1),
				zap.String("tag", tag),
			)
		}

		session.RecordAnswer(i, tag)
	}

	return nil
}

// askQuestions walks through the quiz with prompts. Choosing "back" returns to
// the previous question with its answer preselected.
func askQuestions(session *careers.Session, quiz *careers.Quiz) error {
	for i := 0; i < quiz.Len(); {
		question := quiz.Questions[i]

		items := make([]string, 0, len(question.Options)+1)
		cursor := 0
		answered, _ := session.Answered(i)
		for j, opt := range question.Options {
			items = append(items, opt.Label)
			if opt.Tag == answered {
				cursor = j
			}
		}
		if i > 0 {
			items = append(items, PromptBack)
		}

		prompt := promptui.Select{
			Label:     fmt.Sprintf("Question %d of %d: %s", i+1, quiz.Len(), question.Prompt),
			Items:     items,
			CursorPos: cursor,
			Size:      len(items),
		}

		idx, _, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return errExit
			}
			return err
		}

		if idx == len(question.Options) {
			i--
			continue
		}

		session.RecordAnswer(i, question.Options[idx].Tag)
		i++
	}

	return nil
}
