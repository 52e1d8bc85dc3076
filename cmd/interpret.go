package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/college-compass/internal/backend"
	"github.com/spigell/college-compass/internal/logger"
	"github.com/spigell/college-compass/internal/render"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret [file|-]",
	Short: "Interpret a saved roadmap payload and render it",
	Long: `Interpret reads a generator payload from a file or stdin and renders it.
The payload may be plain text, JSON, or JSON wrapped in a markdown code fence.
With --field the input is a backend response and the named field is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runInterpret(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(interpretCmd)

	interpretCmd.Flags().String("field", "", "take the payload from this field of a backend response, e.g. roadmap")
	interpretCmd.Flags().Bool("loading", false, "treat the payload as still being generated")
}

func runInterpret(cmd *cobra.Command, args []string) {
	log, config := setup()

	path := "-"
	if len(args) > 0 {
		path = args[0]
	}

	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		log.Fatal("reading the payload", zap.Error(err))
	}

	field, _ := cmd.Flags().GetString("field")
	loading, _ := cmd.Flags().GetBool("loading")

	raw, err := payload(data, field)
	if err != nil {
		log.Fatal("extracting the payload", zap.Error(err), zap.String("field", field))
	}

	result := newInterpreter(config.Interpreter, log).Interpret(raw, loading)
	log.Debug("payload interpreted", zap.String(logger.FieldContentState, result.State.String()))

	if err := render.New(cmd.OutOrStdout()).Roadmap(result); err != nil {
		log.Fatal("rendering the payload", zap.Error(err))
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return data, nil
}

// payload returns the raw content to interpret: the whole input, or one field
// of a backend response envelope.
func payload(data []byte, field string) (any, error) {
	if field == "" {
		return string(data), nil
	}

	return backend.ExtractField(data, field)
}
