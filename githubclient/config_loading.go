// githubclient/config_loading.go
// Description: This file contains functions to load and validate configuration values
// from a JSON file or environment variables.
package githubclient

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/deploymenttheory/go-api-github-client/authcontext"
)

const ConfigFileExtension = ".json"

// authSettings is the JSON/environment representation of an auth context.
type authSettings struct {
	Method         string `json:"method"` // anonymous, personal_token, basic, oauth, app
	Token          string `json:"token,omitempty"`
	Username       string `json:"username,omitempty"`
	Password       string `json:"password,omitempty"`
	AppID          string `json:"app_id,omitempty"`
	PrivateKey     string `json:"private_key,omitempty"`
	PrivateKeyFile string `json:"private_key_file,omitempty"`
}

// build turns the serializable settings into an AuthContext value.
func (a authSettings) build() (authcontext.AuthContext, error) {
	switch a.Method {
	case "", "anonymous":
		return authcontext.Anonymous{}, nil

	case "personal_token":
		if a.Token == "" {
			return nil, fmt.Errorf("auth method %q requires a token", a.Method)
		}
		return authcontext.PersonalToken{Token: a.Token}, nil

	case "oauth":
		if a.Token == "" {
			return nil, fmt.Errorf("auth method %q requires a token", a.Method)
		}
		return authcontext.OAuthToken{Token: a.Token}, nil

	case "basic":
		if a.Username == "" || a.Password == "" {
			return nil, fmt.Errorf("auth method %q requires a username and password", a.Method)
		}
		return authcontext.BasicAuth{Username: a.Username, Password: a.Password}, nil

	case "app":
		if a.AppID == "" {
			return nil, fmt.Errorf("auth method %q requires an app_id", a.Method)
		}
		key := []byte(a.PrivateKey)
		if len(key) == 0 && a.PrivateKeyFile != "" {
			fileKey, err := os.ReadFile(a.PrivateKeyFile)
			if err != nil {
				return nil, fmt.Errorf("reading app private key file %s: %w", a.PrivateKeyFile, err)
			}
			key = fileKey
		}
		if len(key) == 0 {
			return nil, fmt.Errorf("auth method %q requires a private_key or private_key_file", a.Method)
		}
		return authcontext.AppAuth{AppID: a.AppID, PrivateKey: key}, nil

	default:
		return nil, fmt.Errorf("unsupported auth method: %q", a.Method)
	}
}

// LoadConfigFromFile loads client configuration settings from a JSON file.
func LoadConfigFromFile(path string) (*ClientConfig, error) {
	absPath, err := validateConfigFilePath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	byteValue, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}

	var fileConfig struct {
		ClientConfig
		AuthSettings authSettings `json:"auth"`
	}
	if err := json.Unmarshal(byteValue, &fileConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal JSON: %w", err)
	}

	config := fileConfig.ClientConfig
	config.Auth, err = fileConfig.AuthSettings.build()
	if err != nil {
		return nil, err
	}

	SetDefaultValuesClientConfig(&config)
	return &config, nil
}

// LoadConfigFromEnv loads client configuration settings from environment variables.
// If any environment variables are not set, the default values defined in the
// constants are used instead.
func LoadConfigFromEnv() (*ClientConfig, error) {
	config := &ClientConfig{
		BaseURL:             getEnvAsString("GITHUB_BASE_URL", DefaultBaseURL),
		UploadURL:           getEnvAsString("GITHUB_UPLOAD_URL", DefaultUploadURL),
		LogLevel:            getEnvAsString("GITHUB_LOG_LEVEL", DefaultLogLevelString),
		LogOutputFormat:     getEnvAsString("GITHUB_LOG_OUTPUT_FORMAT", DefaultLogOutputFormat),
		LogConsoleSeparator: getEnvAsString("GITHUB_LOG_CONSOLE_SEPARATOR", DefaultLogConsoleSeparator),
		HideSensitiveData:   getEnvAsBool("GITHUB_HIDE_SENSITIVE_DATA", DefaultHideSensitiveData),
		CustomTimeout:       getEnvAsDuration("GITHUB_CUSTOM_TIMEOUT", DefaultCustomTimeout),
		FollowRedirects:     getEnvAsBool("GITHUB_FOLLOW_REDIRECTS", DefaultFollowRedirects),
		MaxRedirects:        getEnvAsInt("GITHUB_MAX_REDIRECTS", DefaultMaxRedirects),
	}

	auth, err := authSettingsFromEnv().build()
	if err != nil {
		return nil, err
	}
	config.Auth = auth

	return config, nil
}

// authSettingsFromEnv picks the auth method from the credential variables present:
// app credentials win over a personal token, which wins over basic credentials.
func authSettingsFromEnv() authSettings {
	switch {
	case os.Getenv("GITHUB_APP_ID") != "":
		return authSettings{
			Method:         "app",
			AppID:          os.Getenv("GITHUB_APP_ID"),
			PrivateKey:     os.Getenv("GITHUB_APP_PRIVATE_KEY"),
			PrivateKeyFile: os.Getenv("GITHUB_APP_PRIVATE_KEY_FILE"),
		}
	case os.Getenv("GITHUB_TOKEN") != "":
		return authSettings{Method: "personal_token", Token: os.Getenv("GITHUB_TOKEN")}
	case os.Getenv("GITHUB_OAUTH_TOKEN") != "":
		return authSettings{Method: "oauth", Token: os.Getenv("GITHUB_OAUTH_TOKEN")}
	case os.Getenv("GITHUB_USERNAME") != "":
		return authSettings{
			Method:   "basic",
			Username: os.Getenv("GITHUB_USERNAME"),
			Password: os.Getenv("GITHUB_PASSWORD"),
		}
	default:
		return authSettings{Method: "anonymous"}
	}
}

func validateConfigFilePath(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	absPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		return "", fmt.Errorf("unable to resolve the absolute path of the configuration file: %s, error: %w", path, err)
	}

	if filepath.Ext(absPath) != ConfigFileExtension {
		return "", fmt.Errorf("invalid file extension for configuration file: %s, expected %s", path, ConfigFileExtension)
	}

	return absPath, nil
}

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
