// Package config resolves the generator's command-line configuration.
//
// Each setting is taken from, in order of precedence: a command-line flag,
// an INPUTTYPE_* environment variable, a .env file, and the built-in default.
package config
