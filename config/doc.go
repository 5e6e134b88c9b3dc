// SPDX-License-Identifier: MIT

// Package config loads the commeval run configuration.
//
// Sources, lowest priority first:
//  1. Defaults (Default).
//  2. A YAML file; unknown keys are rejected.
//  3. COMMEVAL_* environment variables.
//
// The merged result is validated with go-playground/validator struct tags.
package config
