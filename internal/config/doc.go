// Package config loads warctl's per-user configuration: manager URL and
// credentials, request timeout, artifact environment, and staging
// location. Every value can be overridden per call by CLI flags.
package config
