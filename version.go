package sdk

// Version is the published SDK version.
// 0.4.0: Breaking - Files.Upload rejects zero-byte files instead of silently
// issuing no block calls (the server never finalizes an empty session).
// 0.3.0: Add ConfigFromEnv and the PORTALGRID_* environment surface.
// 0.2.0: Add Records.CreateValidated/UpdateValidated with JSON Schema
// payload validation, and ZerologHooks for structured telemetry.
const Version = "0.4.0"
