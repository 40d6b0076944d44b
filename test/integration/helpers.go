//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
	"github.com/fivetwenty-io/paystack/pkg/psclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	SecretKey  string
	BaseURL    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		SecretKey:  os.Getenv("PAYSTACK_SECRET_KEY"),
		BaseURL:    os.Getenv("PAYSTACK_BASE_URL"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("PAYSTACK_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the paystack binary.
func getBinaryPath() string {
	if path := os.Getenv("PAYSTACK_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../paystack",
		"./paystack",
		"../paystack",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "paystack"
}

// SkipIfMissingKey skips the test unless a test-mode secret key is set.
func (config *TestConfig) SkipIfMissingKey(t *testing.T) {
	t.Helper()

	if config.SecretKey == "" {
		t.Skip("PAYSTACK_SECRET_KEY not set, skipping integration test")
	}

	if !strings.HasPrefix(config.SecretKey, "sk_test_") {
		t.Skip("PAYSTACK_SECRET_KEY is not a test key, refusing to run integration tests")
	}
}

// SkipIfMissingBinary additionally skips when the CLI has not been built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	config.SkipIfMissingKey(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("paystack binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// NewClient creates a library client for the configured account.
func (config *TestConfig) NewClient(t *testing.T) paystack.Client {
	t.Helper()

	client, err := psclient.New(&paystack.Config{
		SecretKey: config.SecretKey,
		BaseURL:   config.BaseURL,
		UserAgent: "paystack-go-integration",
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

// CommandRunner provides utilities for running paystack commands.
type CommandRunner struct {
	config    *TestConfig
	t         *testing.T
	configDir string
}

// NewCommandRunner creates a runner with an isolated home directory.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:    config,
		t:         t,
		configDir: t.TempDir(),
	}
}

// Run executes a paystack command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a paystack command with stdin input.
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+runner.configDir,
		"PAYSTACK_SECRET_KEY="+runner.config.SecretKey,
	)

	if runner.config.BaseURL != "" {
		cmd.Env = append(cmd.Env, "PAYSTACK_BASE_URL="+runner.config.BaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateReference creates a unique transaction reference.
func GenerateReference(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// AssertJSONOutput verifies command output is valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not valid JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML.
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var decoded interface{}

	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil || decoded == nil {
		t.Errorf("Output is not valid YAML: %s", output)
	}
}
