// Package config loads and merges cmpatch configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (CMPATCH_TOOL, CMPATCH_SPLIT, CMPATCH_STRICT, etc.)
//  3. Config file ($XDG_CONFIG_HOME/cmpatch/config.json, or --config)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [SetField] to apply a single
// key by name.
package config
