package constants

// API endpoint and identification.
const (
	// DefaultBaseURL is the Paystack API base address.
	DefaultBaseURL = "https://api.paystack.co"

	// EnvSecretKey names the environment variable holding the secret key.
	EnvSecretKey = "PAYSTACK_SECRET_KEY"

	// Version is the library version reported in the User-Agent header.
	Version = "1.0.0"

	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "paystack-go/" + Version

	// ContentTypeJSON is the Accept and Content-Type of every request.
	ContentTypeJSON = "application/json"
)

// Envelope and error payload keys, as they appear after key conversion.
const (
	KeyStatus  = "status"
	KeyMessage = "message"
	KeyData    = "data"
	KeyMeta    = "meta"
	KeyCode    = "code"
	KeyType    = "type"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// CLI configuration.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".paystack"

	// ConfigFileName is the CLI config file name.
	ConfigFileName = "config.yml"

	// EnvPrefix is the viper environment prefix for CLI settings.
	EnvPrefix = "PAYSTACK"

	// EnvFileName is loaded from the working directory when present.
	EnvFileName = ".env"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Command argument counts.
const (
	// MinimumArgumentCount is the minimum number of command line arguments.
	MinimumArgumentCount = 2

	// StandardPageSize is the default page size for list commands.
	StandardPageSize = 50
)
