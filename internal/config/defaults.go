package config

import "time"

const (
	// DefaultPort is used when no PORT is configured through any source.
	DefaultPort = 8000

	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "saas-backend"
	defaultTokenDuration  = 24 * time.Hour
	defaultBcryptCost     = 10

	// defaultTokenSignKey keeps a bare local process bootable.
	// Any real deployment overrides it via APP_TOKEN_SIGN_KEY.
	defaultTokenSignKey = "local-dev-secret"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  defaultTokenSignKey,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
		},
		Server: Server{
			Port:           DefaultPort,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
