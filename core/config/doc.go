// Package config provides configuration management for the sticker manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared on the config structs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Telegram: Bot API endpoint, proxy, timeouts, read retries
//   - Limiter: remote call concurrency cap and idle interval
//   - Snapshot: backup directory prefix and retention
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Telegram.APIBaseURL)
package config
