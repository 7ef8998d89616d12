// Package config provides configuration loading and validation for
// applications embedding streamkit.
//
// It uses Viper to merge a config.yml file, an optional .env file, and
// process environment variables, then unmarshals the result into a Config
// (or a struct embedding one):
//
//	var cfg config.Config
//	if err := config.Load("my-app", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
//	s := adapter.IntPar(src, cfg.Stream.StreamOptions()...)
//
// Environment variables override file values using underscore-separated
// paths (e.g. STREAM_SPLIT_THRESHOLD for stream.split_threshold).
package config
