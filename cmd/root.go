// Package cmd implements the actionitems command line: one-shot chat
// completion against an Azure OpenAI deployment, with credentials held in
// the system keyring.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"actionitems/internal/azure"
	"actionitems/internal/credentials"
	"actionitems/internal/input"
)

var (
	promptFlag     string
	deleteKeysFlag bool
	debugMode      bool

	// Sampling parameters, overridable by flag or config file.
	temperature float32
	topP        float32
	maxTokens   int
	apiVersion  string
)

// errBadArgs reports an argument shape the tool does not accept; Execute
// turns it into the usage message and exit status 1.
var errBadArgs = errors.New("bad arguments")

// errAuthFailed reports an authentication failure that has already been
// explained to the user; only the exit status remains.
var errAuthFailed = errors.New("authentication failed")

var rootCmd = &cobra.Command{
	Use:           "actionitems [--prompt <prompt_file_or_text>] <input_file_or_text>",
	Short:         "Send text to an Azure OpenAI deployment and print the reply",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args)
	},
}

// Execute runs the root command, mapping the sentinel errors to their exit
// statuses. Errors it returns have not been printed.
func Execute() error {
	err := rootCmd.Execute()
	if errors.Is(err, errBadArgs) {
		writeUsage(os.Stderr)
		os.Exit(1)
	}
	if errors.Is(err, errAuthFailed) {
		os.Exit(1)
	}
	return err
}

// initConfig loads the optional $HOME/.actionitems.yml. Absence is fine;
// anything else (unreadable, malformed) is fatal before any network or
// store access.
func initConfig() {
	viper.SetConfigName(".actionitems")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := azure.DefaultParams()
	flags := rootCmd.Flags()
	flags.StringVar(&promptFlag, "prompt", "", "system prompt text or path to a file containing it")
	flags.BoolVar(&deleteKeysFlag, "delete-keys", false, "delete all stored credentials")
	flags.BoolVar(&debugMode, "debug", false, "enable debug logging")

	flags.Float32Var(&temperature, "temperature", defaults.Temperature, "controls randomness in responses (0.0-1.0)")
	flags.Float32Var(&topP, "top-p", defaults.TopP, "controls diversity via nucleus sampling (0.0-1.0)")
	flags.IntVar(&maxTokens, "max-tokens", defaults.MaxTokens, "maximum number of tokens in the response")
	flags.StringVar(&apiVersion, "api-version", azure.DefaultAPIVersion, "chat completions API version")

	// Bind parameter flags to viper for config file support
	_ = viper.BindPFlag("temperature", flags.Lookup("temperature"))
	_ = viper.BindPFlag("top-p", flags.Lookup("top-p"))
	_ = viper.BindPFlag("max-tokens", flags.Lookup("max-tokens"))
	_ = viper.BindPFlag("api-version", flags.Lookup("api-version"))

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		writeHelp(cmd.OutOrStdout())
	})
	rootCmd.SetFlagErrorFunc(func(*cobra.Command, error) error {
		return errBadArgs
	})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func run(ctx context.Context, args []string) error {
	if debugMode {
		log.SetLevel(log.DebugLevel)
	}
	if err := validateArgs(deleteKeysFlag, args); err != nil {
		return err
	}

	manager := credentials.NewManager(
		credentials.SystemStore{},
		credentials.NewTerminalPrompter(),
		os.Stdout,
	)

	if deleteKeysFlag {
		return deleteKeys(manager, os.Stdout)
	}

	systemPrompt := input.DefaultSystemPrompt
	if promptFlag != "" {
		systemPrompt = input.Resolve(promptFlag)
	}
	text := input.Resolve(args[0])

	client := azure.NewClient()
	client.APIVersion = viper.GetString("api-version")

	return runSend(ctx, manager, client, os.Stdout, systemPrompt, text)
}

// validateArgs checks the argument shape before anything touches the store
// or the network.
func validateArgs(deleteKeys bool, args []string) error {
	if deleteKeys {
		if len(args) != 0 {
			return errBadArgs
		}
		return nil
	}
	if len(args) != 1 {
		return errBadArgs
	}
	return nil
}

func deleteKeys(manager *credentials.Manager, out io.Writer) error {
	if err := manager.DeleteAll(); err != nil {
		return err
	}
	fmt.Fprintln(out, "All credentials deleted from secure storage.")
	return nil
}

func runSend(ctx context.Context, manager *credentials.Manager, client *azure.Client, out io.Writer, systemPrompt, text string) error {
	creds, err := manager.ResolveAll()
	if err != nil {
		return err
	}

	params := azure.Params{
		Temperature: float32(viper.GetFloat64("temperature")),
		TopP:        float32(viper.GetFloat64("top-p")),
		MaxTokens:   viper.GetInt("max-tokens"),
	}
	body, err := client.Send(ctx, creds.Endpoint, creds.Deployment, creds.APIKey,
		azure.NewChatRequest(systemPrompt, text, params))
	if err != nil {
		return err
	}

	if reply, ok := azure.Reply(body); ok {
		fmt.Fprintln(out, reply)
		return nil
	}

	if azure.IsAuthFailure(body) {
		spec, _ := credentials.ByName(credentials.NameAPIKey)
		if err := manager.Invalidate(spec); err != nil {
			return err
		}
		fmt.Fprintln(out, "Authentication failed. API key has been cleared.")
		fmt.Fprintln(out, "Please run the tool again to enter a new API key.")
		return errAuthFailed
	}

	// Anything else is a diagnostic dump, not a failure: the process still
	// exits 0. Only the 401 path above is fatal.
	azure.WriteDiagnostic(out, body, text)
	return nil
}
