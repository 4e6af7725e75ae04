// githubclient/config.go
package githubclient

import (
	"errors"
	"net/url"
	"time"

	"github.com/deploymenttheory/go-api-github-client/authcontext"
)

const (
	DefaultBaseURL             = "https://api.github.com"
	DefaultUploadURL           = "https://uploads.github.com"
	DefaultCustomTimeout       = 60 * time.Second
	DefaultFollowRedirects     = true
	DefaultMaxRedirects        = 5
	DefaultLogLevelString      = "LogLevelInfo"
	DefaultLogOutputFormat     = "json"
	DefaultLogConsoleSeparator = "	"
	DefaultHideSensitiveData   = true
)

// ClientConfig holds the options for building a Client. It is copied into the Client
// at construction and never mutated afterwards; changing configuration means building
// a new Client.
type ClientConfig struct {
	// BaseURL is the REST API root. UploadURL is used only for binary content uploads.
	BaseURL   string `json:"base_url"`
	UploadURL string `json:"upload_url"`

	// Auth is the credential mode used for every request issued by the Client.
	Auth authcontext.AuthContext `json:"-"`

	// Log
	LogLevel            string `json:"log_level"`
	LogOutputFormat     string `json:"log_output_format"` // "json" or "console"
	LogConsoleSeparator string `json:"log_console_separator"`
	HideSensitiveData   bool   `json:"hide_sensitive_data"`

	// Misc
	CustomTimeout   time.Duration `json:"custom_timeout"`
	FollowRedirects bool          `json:"follow_redirects"`
	MaxRedirects    int           `json:"max_redirects"`

	// Retrier, when set, wraps each single-request execution with caller-supplied
	// retry policy. The client itself never retries.
	Retrier Retrier `json:"-"`
}

// DefaultClientConfig returns a ClientConfig populated with the default GitHub
// endpoints and policies, authenticated with the given auth context.
func DefaultClientConfig(auth authcontext.AuthContext) ClientConfig {
	return ClientConfig{
		BaseURL:             DefaultBaseURL,
		UploadURL:           DefaultUploadURL,
		Auth:                auth,
		LogLevel:            DefaultLogLevelString,
		LogOutputFormat:     DefaultLogOutputFormat,
		LogConsoleSeparator: DefaultLogConsoleSeparator,
		HideSensitiveData:   DefaultHideSensitiveData,
		CustomTimeout:       DefaultCustomTimeout,
		FollowRedirects:     DefaultFollowRedirects,
		MaxRedirects:        DefaultMaxRedirects,
	}
}

// SetDefaultValuesClientConfig sets default values for unset fields of the client
// configuration. FollowRedirects is left alone: disabling redirects is a valid
// explicit choice, so only MaxRedirects is defaulted when following is enabled.
func SetDefaultValuesClientConfig(config *ClientConfig) {
	setDefaultString(&config.BaseURL, DefaultBaseURL)
	setDefaultString(&config.UploadURL, DefaultUploadURL)
	setDefaultString(&config.LogLevel, DefaultLogLevelString)
	setDefaultString(&config.LogOutputFormat, DefaultLogOutputFormat)
	setDefaultString(&config.LogConsoleSeparator, DefaultLogConsoleSeparator)
	setDefaultDuration(&config.CustomTimeout, DefaultCustomTimeout)

	if config.Auth == nil {
		config.Auth = authcontext.Anonymous{}
	}
	if config.FollowRedirects && config.MaxRedirects == 0 {
		config.MaxRedirects = DefaultMaxRedirects
	}
}

func validateClientConfig(config ClientConfig) error {
	if config.Auth == nil {
		return errors.New("no auth context supplied, use authcontext.Anonymous for unauthenticated access")
	}

	if _, err := url.Parse(config.BaseURL); err != nil || config.BaseURL == "" {
		return errors.New("base URL must be a parseable, non-empty URL")
	}

	if _, err := url.Parse(config.UploadURL); err != nil || config.UploadURL == "" {
		return errors.New("upload URL must be a parseable, non-empty URL")
	}

	if config.CustomTimeout <= 0 {
		return errors.New("timeout must be greater than 0")
	}

	if config.FollowRedirects && config.MaxRedirects < 1 {
		return errors.New("max redirects cannot be less than 1 when following redirects")
	}

	if config.MaxRedirects < 0 {
		return errors.New("max redirects cannot be negative")
	}

	return nil
}

func setDefaultString(field *string, defaultValue string) {
	if *field == "" {
		*field = defaultValue
	}
}

func setDefaultDuration(field *time.Duration, defaultValue time.Duration) {
	if *field <= 0 {
		*field = defaultValue
	}
}
