package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/paystack/internal/constants"
	"github.com/fivetwenty-io/paystack/internal/logging"
	"github.com/fivetwenty-io/paystack/internal/naming"
	"github.com/fivetwenty-io/paystack/pkg/paystack"
	"github.com/fivetwenty-io/paystack/pkg/psclient"
)

// Viper keys. With the PAYSTACK env prefix they map to PAYSTACK_SECRET_KEY,
// PAYSTACK_BASE_URL and so on.
const (
	KeySecretKey = "secret_key"
	KeyBaseURL   = "base_url"
	KeyOutput    = "output"
	KeyVerbose   = "verbose"
)

// Config represents the persisted CLI configuration.
type Config struct {
	SecretKey string `json:"secret_key,omitempty" yaml:"secret_key,omitempty"`
	BaseURL   string `json:"base_url,omitempty"   yaml:"base_url,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
}

func configFilePath() string {
	if file := viper.ConfigFileUsed(); file != "" {
		return file
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", constants.ConfigDirName, constants.ConfigFileName)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName)
}

func loadConfig() *Config {
	return &Config{
		SecretKey: viper.GetString(KeySecretKey),
		BaseURL:   viper.GetString(KeyBaseURL),
		Output:    viper.GetString(KeyOutput),
	}
}

// loadStoredConfig reads only the config file, ignoring flags and env.
func loadStoredConfig() (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(configFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigStruct(config *Config) error {
	configFile := configFilePath()

	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// createClient builds an API client from flags, env and the config file.
func createClient() (paystack.Client, error) {
	config := loadConfig()

	clientConfig := &paystack.Config{
		SecretKey: config.SecretKey,
		BaseURL:   config.BaseURL,
	}

	if viper.GetBool(KeyVerbose) {
		clientConfig.Debug = true
		clientConfig.Logger = logging.New(os.Stderr, "debug", logging.FormatConsole)
	}

	client, err := psclient.New(clientConfig)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func outputFormat() string {
	format := viper.GetString(KeyOutput)
	if format == "" {
		return constants.FormatTable
	}

	return format
}

func renderJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func renderYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// renderStructured writes v as JSON or YAML, or reports false for table.
func renderStructured(cmd *cobra.Command, v interface{}) (bool, error) {
	switch format := outputFormat(); format {
	case constants.FormatJSON:
		return true, renderJSON(cmd.OutOrStdout(), v)
	case constants.FormatYAML:
		return true, renderYAML(cmd.OutOrStdout(), v)
	case constants.FormatTable:
		return false, nil
	default:
		return true, fmt.Errorf("%w: %s", constants.ErrUnknownOutput, format)
	}
}

// renderResponse prints a raw envelope. Tables show the data block: objects
// as field/value rows, arrays of objects with one column per key.
func renderResponse(cmd *cobra.Command, resp *paystack.Response) error {
	handled, err := renderStructured(cmd, envelopeView(resp))
	if handled {
		return err
	}

	out := cmd.OutOrStdout()

	if resp.Message != "" {
		_, _ = fmt.Fprintln(out, resp.Message)
	}

	switch data := resp.Data.(type) {
	case paystack.Object:
		renderObjectTable(out, data)
	case paystack.Array:
		renderArrayTable(out, data)
	case nil, paystack.Null:
	default:
		_, _ = fmt.Fprintln(out, formatCell(data))
	}

	return nil
}

// envelopeView is the response with data and meta as plain values, which
// both encoders can handle.
func envelopeView(resp *paystack.Response) map[string]interface{} {
	view := map[string]interface{}{
		"statusCode": resp.StatusCode,
		"status":     resp.Status,
		"message":    resp.Message,
		"data":       paystack.Interface(resp.Data),
	}

	if resp.Meta != nil {
		view["meta"] = paystack.Interface(resp.Meta)
	}

	return view
}

func renderObjectTable(w io.Writer, data paystack.Object) {
	keys := sortedKeys(data)

	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")

	for _, key := range keys {
		_ = table.Append(humanize(key), formatCell(data[key]))
	}

	_ = table.Render()
}

func renderArrayTable(w io.Writer, data paystack.Array) {
	if len(data) == 0 {
		_, _ = fmt.Fprintln(w, "No results")

		return
	}

	first, ok := data[0].(paystack.Object)
	if !ok {
		table := tablewriter.NewWriter(w)
		table.Header("Value")

		for _, item := range data {
			_ = table.Append(formatCell(item))
		}

		_ = table.Render()

		return
	}

	keys := sortedKeys(first)

	headers := make([]string, 0, len(keys))
	for _, key := range keys {
		headers = append(headers, humanize(key))
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers)

	for _, item := range data {
		object, _ := item.(paystack.Object)

		row := make([]string, 0, len(keys))
		for _, key := range keys {
			row = append(row, formatCell(object[key]))
		}

		_ = table.Append(row)
	}

	_ = table.Render()
}

func sortedKeys(object paystack.Object) []string {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

var titleCaser = cases.Title(language.English)

// humanize turns "gatewayResponse" into "Gateway Response".
func humanize(key string) string {
	return titleCaser.String(strings.ReplaceAll(naming.Flatten(key), "_", " "))
}

func formatCell(v paystack.Value) string {
	switch value := v.(type) {
	case nil, paystack.Null:
		return ""
	case paystack.String:
		return string(value)
	case paystack.Number:
		return string(value)
	case paystack.Bool:
		if value {
			return "yes"
		}

		return "no"
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return ""
		}

		return string(data)
	}
}
