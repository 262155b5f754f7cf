package common

// CredentialStorageKey is the fixed key under which the bearer credential
// is persisted in local client storage.
const CredentialStorageKey = "cmd_token"

// RequestIDHeaderName is the HTTP header used to carry a per-request
// correlation ID on outbound calls.
const RequestIDHeaderName = "X-Request-Id"
