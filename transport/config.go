package transport

// Config defines how the users API is reached.
type Config struct {
	// BaseURL is the root of the users API; "/users" is appended to it.
	BaseURL string `yaml:"base_url" validate:"required,url" default:"https://jsonplaceholder.typicode.com"`

	// UserAgent is sent with every request.
	UserAgent string `yaml:"user_agent" default:"userbook"`
}
