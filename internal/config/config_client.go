package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

const defaultClientRequestTimeout = 10 * time.Second

// ClientConfig is the configuration of the blog API client (cmd/client).
type ClientConfig struct {
	// BaseURL is the root URL of the blog API, without the /api prefix.
	// Env: APP_BASE_URL
	BaseURL string `env:"APP_BASE_URL"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"ADAPTER_REQUEST_TIMEOUT"`
}

// GetClientConfig builds and validates the client configuration from the
// environment and args. Flags that are not configuration (the command and
// its operands) are returned as the remaining arguments.
//
// Flags:
//
//	-base-url root URL of the blog API
//	-timeout  outbound request timeout
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := env.Parse(envCfg); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg := &ClientConfig{}
	fs := flag.NewFlagSet("go-blog-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&flagCfg.BaseURL, "base-url", "", "Root URL of the blog API")
	fs.DurationVar(&flagCfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultClientRequestTimeout
	}

	return cfg, fs.Args(), cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return errors.Join(ErrInvalidAdapterConfigs, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, cfg.BaseURL)
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout %s", ErrInvalidAdapterConfigs, cfg.RequestTimeout)
	}

	return nil
}
