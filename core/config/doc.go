// Package config loads typed configuration from environment variables using
// caarlos0/env. A .env file in the working directory is read on first use;
// variables already present in the environment take precedence.
//
//	type AppConfig struct {
//		LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
//		RoutesFile string `env:"ROUTES_FILE"`
//		TrustProxy bool   `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each configuration type is parsed once per process. Later calls with the same
// type receive a copy of the cached value; different types are cached independently.
package config
