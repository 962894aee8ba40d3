/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3001)
  - DatabaseURL: submission history database (optional; empty disables history)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - CORSOrigin: allowed browser origin (default: http://localhost:3000)
  - MaxBodyBytes: request body cap (default: 1 MiB)
  - IPHashSalt: secret for client IP hashing
  - Identity: name, email, roll number, date of birth

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-cors-origin  Allowed CORS origin
	-max-body     Maximum body size in bytes
	-ip-salt      Client IP hash salt
	-env-file     Path to .env file (default: .env)
	-name, -email, -roll, -dob  Identity fields

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	CORS_ORIGIN        → -cors-origin
	MAX_BODY_BYTES     → -max-body
	IP_HASH_SALT       → -ip-salt
	USER_FULL_NAME     → -name
	USER_EMAIL         → -email
	USER_ROLL_NUMBER   → -roll
	USER_DATE_OF_BIRTH → -dob

Variables may also come from the .env file; values already in the
environment are never overwritten by it. CLI flags take precedence over
both.

# Validation

ParseFlags returns an error for malformed numeric values, an out of range
port, a non-positive body limit, or a database type other than sqlite or
postgres. Identity fields never fail: unset fields use DefaultIdentity.
*/
package cliparse
