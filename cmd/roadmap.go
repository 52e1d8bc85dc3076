package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/college-compass/internal/logger"
	"github.com/spigell/college-compass/internal/render"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a personalized college roadmap from a student profile",
	Run: func(cmd *cobra.Command, _ []string) {
		runRoadmap(cmd)
	},
}

func init() {
	rootCmd.AddCommand(roadmapCmd)

	flags := roadmapCmd.Flags()
	flags.String("grade", "", "current grade, e.g. 11")
	flags.String("gpa", "", "current GPA")
	flags.String("classes", "", "current and planned classes")
	flags.String("interests", "", "academic and career interests")
	flags.String("activities", "", "extracurricular activities")
	flags.String("demographics", "", "background the advisor should take into account")
	flags.String("testing", "", "standardized test scores or plans")
	flags.String("college-goals", "", "target colleges or programs")
	flags.StringP("save", "s", "", "also write the backend-style response to this file for later 'interpret --field roadmap'")

	for _, name := range []string{"grade", "gpa", "classes", "interests", "activities", "demographics", "testing", "college-goals"} {
		viper.BindPFlag("roadmap."+name, flags.Lookup(name))
	}
}

func runRoadmap(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log, config := setup()

	if err := config.Roadmap.Validate(); err != nil {
		log.Fatal("checking the profile", zap.Error(err),
			zap.String("hint", "fill the roadmap section of the config or pass the profile flags"),
		)
	}

	advisor, err := newAdvisor(ctx, config, log)
	if err != nil {
		log.Fatal("creating an advisor", zap.Error(err))
	}

	out := render.New(cmd.OutOrStdout())
	interpreter := newInterpreter(config.Interpreter, log)

	if err := out.Roadmap(interpreter.Interpret(nil, true)); err != nil {
		log.Fatal("rendering", zap.Error(err))
	}

	log.Info("generating a roadmap", zap.String(logger.FieldProvider, advisor.Name()))

	raw, err := advisor.Roadmap(ctx, config.Roadmap)
	if err != nil {
		log.Fatal("generating a roadmap", zap.Error(err))
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := saveEnvelope(path, roadmapEnvelopeField, raw); err != nil {
			log.Error("saving the roadmap", zap.Error(err))
		} else {
			log.Info("roadmap saved", zap.String("filename", path))
		}
	}

	result := interpreter.Interpret(raw, false)
	log.Info("roadmap generated", zap.String(logger.FieldContentState, result.State.String()))

	if err := out.Roadmap(result); err != nil {
		log.Fatal("rendering the roadmap", zap.Error(err))
	}
}

const (
	roadmapEnvelopeField  = "roadmap"
	feedbackEnvelopeField = "feedback"
)

// saveEnvelope writes raw in the same shape the backend responds with.
func saveEnvelope(path, field string, raw any) error {
	data, err := json.MarshalIndent(map[string]any{field: raw}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", field, err)
	}

	return os.WriteFile(path, data, 0o600)
}
