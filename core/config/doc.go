// Package config provides configuration management for devserve.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (via godotenv). Defaults come from the `default` struct tags
// of each section.
//
// # Configuration Structure
//
//   - Server: listen host and port (SERVER_HOST, SERVER_PORT)
//   - Browser: whether to open the default browser (BROWSER_ENABLED)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Port)
package config
