package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/college-compass/internal/ai"
	"github.com/spigell/college-compass/internal/logger"
)

const (
	app = "college-compass"

	providerGemini  = "gemini"
	providerBackend = "backend"
)

type Config struct {
	Quiz        *QuizConfig         `mapstructure:"quiz"`
	AI          *AIConfig           `mapstructure:"ai"`
	Backend     *BackendConfig      `mapstructure:"backend"`
	Interpreter *InterpreterConfig  `mapstructure:"interpreter"`
	Roadmap     *ai.Profile         `mapstructure:"roadmap"`
	Essay       *ai.EssaySubmission `mapstructure:"essay"`
}

type QuizConfig struct {
	File string `mapstructure:"file"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type BackendConfig struct {
	URL       string `mapstructure:"url"`
	TokenFile string `mapstructure:"token-file"`
}

type InterpreterConfig struct {
	Fields       []string `mapstructure:"fields"`
	MaxLogLength int      `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	errExit = errors.New("exit requested")

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "college-compass is a cli for career quizzes, college roadmaps and essay feedback",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envs := map[string]string{
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
		"backend.url":            "COLLEGE_COMPASS_BACKEND_URL",
		"backend.token-file":     "COLLEGE_COMPASS_BACKEND_TOKEN_FILE",
	}
	for key, env := range envs {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	viper.SetDefault("ai.provider", providerGemini)
	viper.SetDefault("ai.gemini.max-retries", 3)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is college-compass.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("provider", "", "advisor provider: gemini or backend")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("ai.provider", rootCmd.PersistentFlags().Lookup("provider"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The quiz and interpret commands work without a config file, so only an
	// explicitly given file has to exist.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Quiz == nil {
		config.Quiz = &QuizConfig{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.Backend == nil {
		config.Backend = &BackendConfig{}
	}
	if config.Interpreter == nil {
		config.Interpreter = &InterpreterConfig{}
	}
	if config.Roadmap == nil {
		config.Roadmap = &ai.Profile{}
	}
	if config.Essay == nil {
		config.Essay = &ai.EssaySubmission{}
	}

	return config, nil
}

// setup builds the logger and decodes the config. It is called at the start of
// every command that needs either.
func setup() (*zap.Logger, *Config) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	return l, config
}
