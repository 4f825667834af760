package upload

// Package upload keeps the session-local list of pictures the user added
// through the file picker. Entries are metadata only; file contents are
// never read or validated, and nothing survives an app restart.
