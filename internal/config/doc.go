// Package config handles configuration loading for the SureDrive API server.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from SUREDRIVE_CONFIG environment variable
//  2. ~/.config/suredrive/server.yaml (XDG config dir)
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${SUREDRIVE_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:8080"
//
// Database:
//
//	database:
//	  path: "/var/lib/suredrive/server.db"
//
// Authentication:
//
//	auth:
//	  jwt_secret: "${SUREDRIVE_JWT_SECRET}"  # required, no default
//	  token_ttl: "24h"                       # one TTL for every login path
//	  allow_self_admin: false                # POST /register with role=admin
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() fails closed: a missing or empty jwt_secret is a hard error so the
// server never signs tokens with a guessable default.
package config
