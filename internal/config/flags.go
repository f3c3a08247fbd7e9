package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the values of the command-line flags that override
// configuration. It is bound to a cobra/pflag flag set with [BindFlags].
type Flags struct {
	configPath string
	apiKey     string
	userID     string
	userEmail  string
	apiURL     string
	transport  string
	address    string
	logLevel   string
	logFile    string
}

// BindFlags registers the configuration flags on fs.
//
// Flags:
//
//	-c/--config  JSON or YAML config file path
//	--api-key    Granola API key
//	--user-id    Granola user id
//	--user-email Granola user email
//	--api-url    Granola API base URL
//	--transport  stdio or http
//	-a/--address HTTP transport address host:port
//	--log-level  log level
//	--log-file   rotating log file path
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&f.apiKey, "api-key", "", "Granola API key")
	fs.StringVar(&f.userID, "user-id", "", "Granola user id")
	fs.StringVar(&f.userEmail, "user-email", "", "Granola user email")
	fs.StringVar(&f.apiURL, "api-url", "", "Granola API base URL")
	fs.StringVar(&f.transport, "transport", "", "Transport: stdio or http")
	fs.StringVarP(&f.address, "address", "a", "", "HTTP transport address host:port")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFile, "log-file", "", "Rotating log file path (default: stderr)")

	return f
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		Granola: Granola{
			APIKey:    f.apiKey,
			UserID:    f.userID,
			UserEmail: f.userEmail,
			BaseURL:   f.apiURL,
		},
		Server: Server{
			Transport:   f.transport,
			HTTPAddress: f.address,
		},
		Log: Log{
			Level: f.logLevel,
			File:  f.logFile,
		},
		FilePath: f.configPath,
	}
}
