package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/college-compass/internal/ai"
	"github.com/spigell/college-compass/internal/content"
	"github.com/spigell/college-compass/internal/logger"
	"github.com/spigell/college-compass/internal/render"
)

var essayCmd = &cobra.Command{
	Use:   "essay",
	Short: "Get feedback and a grade for a college essay",
	Run: func(cmd *cobra.Command, _ []string) {
		runEssay(cmd)
	},
}

func init() {
	rootCmd.AddCommand(essayCmd)

	flags := essayCmd.Flags()
	flags.StringP("file", "f", "", "a file with the essay text (- for stdin)")
	flags.String("prompt", "", "the essay prompt")
	flags.String("program", "", "the program or college the essay is for")
	flags.String("grade", "", "the student's current grade")
	flags.StringP("save", "s", "", "also write the backend-style response to this file")

	for _, name := range []string{"prompt", "program", "grade"} {
		viper.BindPFlag("essay."+name, flags.Lookup(name))
	}
}

func runEssay(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log, config := setup()

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			log.Fatal("reading the essay", zap.Error(err))
		}
		config.Essay.Essay = string(data)
	}

	if err := config.Essay.Validate(); err != nil {
		log.Fatal("checking the essay", zap.Error(err),
			zap.String("hint", "pass --file and --prompt or fill the essay section of the config"),
		)
	}

	advisor, err := newAdvisor(ctx, config, log)
	if err != nil {
		log.Fatal("creating an advisor", zap.Error(err))
	}

	out := render.New(cmd.OutOrStdout())
	interpreter := newInterpreter(config.Interpreter, log)

	if err := out.Essay(interpreter.Interpret(nil, true), 0, false); err != nil {
		log.Fatal("rendering", zap.Error(err))
	}

	log.Info("requesting essay feedback",
		zap.String(logger.FieldProvider, advisor.Name()),
		zap.Int("essay_words", len(strings.Fields(config.Essay.Essay))),
	)

	raw, err := advisor.EssayFeedback(ctx, config.Essay)
	if err != nil {
		log.Fatal("requesting essay feedback", zap.Error(err))
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := saveEnvelope(path, feedbackEnvelopeField, raw); err != nil {
			log.Error("saving the feedback", zap.Error(err))
		}
	}

	result := interpreter.Interpret(raw, false)
	grade, graded := essayGrade(result)
	log.Info("essay feedback received",
		zap.String(logger.FieldContentState, result.State.String()),
		zap.Bool("graded", graded),
	)

	if err := out.Essay(result, grade, graded); err != nil {
		log.Fatal("rendering the feedback", zap.Error(err))
	}
}

// essayGrade looks for the grade in text feedback. Structured feedback carries
// no grade line.
func essayGrade(result content.Result) (int, bool) {
	if result.State != content.StateRawFallback {
		return 0, false
	}

	return ai.ExtractGrade(result.Raw)
}
