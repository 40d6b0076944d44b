package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/paystack/internal/auth"
	"github.com/fivetwenty-io/paystack/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the secret key and settings stored in ~/.paystack/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags, environment and the config file are merged",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			masked := *config
			if masked.SecretKey != "" {
				masked.SecretKey = auth.Mask(masked.SecretKey)
			}

			handled, err := renderStructured(cmd, masked)
			if handled {
				return err
			}

			baseURL := masked.BaseURL
			if baseURL == "" {
				baseURL = constants.DefaultBaseURL
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")

			_ = table.Append("Secret Key", masked.SecretKey)
			_ = table.Append("Base URL", baseURL)
			_ = table.Append("Output", outputFormat())
			_ = table.Append("Config File", configFilePath())

			_ = table.Render()

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set base_url or output in the config file. Use set-key for the secret key.",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config, err := loadStoredConfig()
			if err != nil {
				return err
			}

			switch key {
			case KeyBaseURL, "base-url":
				config.BaseURL = value
			case KeyOutput:
				switch value {
				case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
				default:
					return fmt.Errorf("%w: %s", constants.ErrUnknownOutput, value)
				}

				config.Output = value
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)

			return nil
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [SECRET_KEY]",
		Short: "Store the secret key",
		Long:  "Store the API secret key in the config file. Without an argument the key is read from the terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				secretKey string
				err       error
			)

			if len(args) == 1 {
				secretKey = args[0]
			} else {
				secretKey, err = promptSecretKey(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}

			secretKey = strings.TrimSpace(secretKey)
			if secretKey == "" {
				return constants.ErrEmptySecretKey
			}

			config, err := loadStoredConfig()
			if err != nil {
				return err
			}

			config.SecretKey = secretKey

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Secret key %s saved to %s\n", auth.Mask(secretKey), configFilePath())

			return nil
		},
	}
}

// promptSecretKey reads the key without echo when stdin is a terminal.
func promptSecretKey(in io.Reader, prompt io.Writer) (string, error) {
	_, _ = fmt.Fprint(prompt, "Secret key: ")

	if file, ok := in.(*os.File); ok && file == os.Stdin && term.IsTerminal(int(syscall.Stdin)) {
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))

		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", fmt.Errorf("failed to read secret key: %w", err)
		}

		return string(bytePassword), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	return line, nil
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config, err := loadStoredConfig()
			if err != nil {
				return err
			}

			switch key {
			case KeySecretKey, "secret-key":
				config.SecretKey = ""
			case KeyBaseURL, "base-url":
				config.BaseURL = ""
			case KeyOutput:
				config.Output = ""
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), "This will remove the stored secret key and settings. Continue? (y/N): ")

				response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')

				response = strings.ToLower(strings.TrimSpace(response))
				if response != "y" && response != "yes" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

					return nil
				}
			}

			err := os.Remove(configFilePath())
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration cleared")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
