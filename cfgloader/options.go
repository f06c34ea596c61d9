package cfgloader

const defaultDir = "./config"

// Options holds configuration options for Load.
type Options struct {
	// Dir is the directory holding the per-environment YAML files.
	Dir string

	// Env overrides the ENVIRONMENT variable.
	Env string

	// Silent disables printing the loaded config.
	Silent bool
}

// Option is a functional option for configuring Load behavior.
type Option func(*Options)

// WithDir sets the directory the YAML files are read from.
func WithDir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.Dir = dir
		}
	}
}

// WithEnv selects the environment, taking precedence over the ENVIRONMENT variable.
func WithEnv(env string) Option {
	return func(o *Options) {
		o.Env = env
	}
}

// WithSilent disables printing the loaded config.
func WithSilent() Option {
	return func(o *Options) {
		o.Silent = true
	}
}
