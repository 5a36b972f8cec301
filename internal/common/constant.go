package common

// TimestampLayout is the persisted text form of a letter timestamp
// (YYYY-MM-DD HH:MM:SS, local time of the process).
const TimestampLayout = "2006-01-02 15:04:05"

// ViewSecretHeaderName carries the shared secret on JSON API requests.
const ViewSecretHeaderName = "X-View-Secret"

// ViewPassCookieName names the cookie holding a signed view pass.
const ViewPassCookieName = "unspoken_view"
