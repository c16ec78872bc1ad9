// Package config loads seqkit configuration with Viper.
//
// A YAML file is read first, then an optional .env file is loaded into the
// process environment with godotenv, and finally SEQKIT_* variables
// override individual keys (SEQKIT_LOGGING_LEVEL sets logging.level).
//
// # Usage
//
//	var cfg Config
//	err := config.LoadConfig("seqkit", &cfg, config.WithConfigFile(path))
package config
