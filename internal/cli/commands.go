package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyike/finchat/internal/config"
	"github.com/dyike/finchat/internal/dataset"
)

// Version is the finchat release version
const Version = "1.0.0"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "finchat",
		Short: "finchat - rule-based financial metrics chatbot",
		Long: `finchat answers natural-language questions about revenue, net income,
assets, liabilities and operating cash flow for Apple, Microsoft and Tesla,
looked up from a static 10-K dataset. Run without arguments for an
interactive chat.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetString("data"); v != "" {
				cfg.DataFile = v
			}
			if v, _ := cmd.Flags().GetBool("debug"); v {
				cfg.Debug = true
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveMode(cfg)
		},
	}

	rootCmd.AddCommand(newAskCmd(cfg))
	rootCmd.AddCommand(newDataCmd(cfg))
	rootCmd.AddCommand(newConfigCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("data", "", "Dataset source (file path or URL)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	return rootCmd
}

// newAskCmd creates the one-shot question command
func newAskCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question and exit",
		Long: `Ask one question without entering the chat loop.
Example: finchat ask "What was Apple revenue in 2024?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cfg)
			if err != nil {
				return err
			}
			bot := NewBot(cfg, store)
			fmt.Println(bot.Answer(strings.Join(args, " ")))
			return nil
		},
	}
}

// newDataCmd creates the dataset table command
func newDataCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "data",
		Short: "Show the loaded dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cfg)
			if err != nil {
				return err
			}
			fmt.Println(RenderDataTable(store))
			return nil
		},
	}
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cfg)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(cfg)
		},
	})

	return configCmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("finchat v%s\n", Version)
			fmt.Println("Rule-based financial metrics chatbot")
		},
	}
}

// runInteractiveMode loads the dataset and starts the chat loop. A bad
// dataset path re-prompts instead of aborting the session.
func runInteractiveMode(cfg *config.Config) error {
	store, err := loadStore(cfg)
	for err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		path, perr := PromptForDataFile(cfg.DataFile)
		if perr != nil {
			return err
		}
		cfg.DataFile = path
		store, err = loadStore(cfg)
	}

	session := NewInteractiveSession(cfg, store)
	return session.Start()
}

// loadStore loads the configured dataset source
func loadStore(cfg *config.Config) (*dataset.Store, error) {
	return dataset.Load(cfg.DataFile, dataset.WithHTTPTimeout(cfg.HTTPTimeout))
}

func showConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Printf("  data file:        %s\n", cfg.DataFile)
	fmt.Printf("  results dir:      %s\n", cfg.ResultsDir)
	fmt.Printf("  save transcripts: %t\n", cfg.SaveTranscripts)
	fmt.Printf("  pct precision:    %d\n", cfg.PctPrecision)
	fmt.Printf("  http timeout:     %s\n", cfg.HTTPTimeout)
	fmt.Printf("  debug:            %t\n", cfg.Debug)
}

func validateConfig(cfg *config.Config) error {
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Dataset OK: %d records\n", store.Len())
	for _, company := range store.Companies() {
		years := store.Years(company)
		fmt.Printf("  %-10s FY%d-FY%d (%d years)\n",
			company, years[0], years[len(years)-1], len(years))
	}
	return nil
}
