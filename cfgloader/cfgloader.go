// Package cfgloader loads and validates configuration at the start of an application.
package cfgloader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"

	// EnvVar selects the environment when no WithEnv option is given.
	EnvVar = "ENVIRONMENT"

	CodeInvalidEnvironment = "INVALID_ENVIRONMENT"
	CodeConfigNotFound     = "CONFIG_NOT_FOUND"
	CodeInvalidConfig      = "INVALID_CONFIG"
)

//nolint:gochecknoglobals // fixed list of known environments
var environments = []string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}

// Load reads and validates configuration from a YAML file chosen by environment.
// The file is named ${ENVIRONMENT}.yaml and lives in the config directory, ./config by default.
// An unset ENVIRONMENT means local.
//
// The configuration struct should use `yaml` struct tags to map fields to the YAML file structure.
// ${VAR} references in the file are expanded from the process environment, after
// a .env file in the working directory has been loaded if present.
//
// Default values for configuration fields can be set using the `default` struct tag. These values are applied before validation
// if the corresponding fields are not explicitly defined in the YAML file.
//
// Validations are done using the go-playground/validator package.
// See https://pkg.go.dev/github.com/go-playground/validator/v10 for more information.
//
// Example:
//
//	type Config struct {
//	    Host        string `yaml:"host" validate:"required"`  // Maps to the "host" field in the YAML file, required
//	    Port        int    `yaml:"port" default:"8080"`       // Maps to the "port" field in the YAML file, defaults to 8080
//	    LogLevel    string `yaml:"log_level" default:"info"`  // Maps to the "log_level" field, defaults to "info"
//	}
//
// If the YAML file does not define these fields, the default values will be applied.
func Load[T any](opts ...Option) (T, error) {
	var config T

	o := Options{Dir: defaultDir}
	for _, opt := range opts {
		opt(&o)
	}

	if reflect.ValueOf(config).Kind() == reflect.Ptr {
		return config, errx.New("[cfgloader]: type parameter must not be a pointer", errx.WithType(errx.T_Internal))
	}

	_ = godotenv.Load()

	env, err := defineEnvironment(o.Env)
	if err != nil {
		return config, err
	}

	path := filepath.Join(o.Dir, env+".yaml")

	data, err := readConfigFile(path)
	if err != nil {
		return config, err
	}

	data = replaceEnvVars(data)

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return config, errx.New(
			fmt.Sprintf("[cfgloader]: failed to unmarshal %s config file: %v", env, err),
			errx.WithCode(CodeInvalidConfig),
		)
	}

	err = defaults.Set(&config)
	if err != nil {
		return config, errx.New(
			fmt.Sprintf("[cfgloader]: failed to set default values for config: %v", err),
			errx.WithCode(CodeInvalidConfig),
		)
	}

	err = validateConfig(&config, env)
	if err != nil {
		return config, err
	}

	if !o.Silent {
		printConfig(config)
	}

	return config, nil
}

// MustLoad is like Load but terminates the process when the configuration cannot be loaded.
func MustLoad[T any](opts ...Option) T {
	config, err := Load[T](opts...)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	return config
}

func defineEnvironment(override string) (string, error) {
	env := override
	if env == "" {
		env = os.Getenv(EnvVar)
	}
	if env == "" {
		env = EnvLocal
	}

	if !slices.Contains(environments, env) {
		return "", errx.New(
			fmt.Sprintf("[cfgloader]: invalid environment %q. Choices are: %s", env, strings.Join(environments, ", ")),
			errx.WithCode(CodeInvalidEnvironment),
			errx.WithType(errx.T_Validation),
		)
	}
	return env, nil
}

func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errx.New(
			fmt.Sprintf(
				"[cfgloader]: config file not found in the path %s - Make sure that the yaml file exists for each environment",
				path,
			),
			errx.WithCode(CodeConfigNotFound),
			errx.WithType(errx.T_NotFound),
		)
	}
	if err != nil {
		return nil, errx.New(fmt.Sprintf("[cfgloader]: failed to read config file %s: %v", path, err))
	}

	return data, nil
}

func replaceEnvVars(data []byte) []byte {
	dataStr := os.ExpandEnv(string(data))
	return []byte(dataStr)
}

func validateConfig(config any, env string) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(config)

	failedFields := make([]string, 0)
	if errs, ok := err.(validator.ValidationErrors); ok { //nolint: errorlint // Using type assertion for validator errors handling
		for _, err := range errs {
			tagErr := err.Tag()
			if err.Param() != "" {
				tagErr += fmt.Sprintf("=%s", err.Param())
			}
			failedFields = append(failedFields, fmt.Sprintf("%s: %s", err.Namespace(), tagErr))
		}
	}

	if len(failedFields) > 0 {
		return errx.New(
			fmt.Sprintf("[cfgloader]: invalid fields in %s config -> %s", env, strings.Join(failedFields, ",  ")),
			errx.WithCode(CodeInvalidConfig),
			errx.WithType(errx.T_Validation),
		)
	}
	return nil
}
