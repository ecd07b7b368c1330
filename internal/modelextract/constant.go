package modelextract

import "time"

// Log prefixes
const (
	LogPrefixExtract = "internal.modelextract.Extract"
)

// Prompt limits
const (
	PreviousTextLimit   = 800
	PreviousOutputLimit = 2000

	DefaultMaxInputChars = 500
	DefaultTimeout       = 15 * time.Second

	maxAttempts = 2
)

// Prompt sections
const (
	SectionPreviousText   = "Previous user message:"
	SectionPreviousOutput = "Previous action output (JSON):"
	SectionUserMessage    = "User message:"

	// TruncatedMarker ends a previous action output cut at PreviousOutputLimit.
	TruncatedMarker = "...[truncated]"

	// Unserializable replaces a previous action output that cannot be encoded.
	Unserializable = "unserializable"

	// StrictSuffix is appended to the prompt for the single retry.
	StrictSuffix = "Return JSON only. No markdown, no prose."

	DateFormatISO = "2006-01-02"

	DateContextTemplate = `Date context (%s):
- Today: %s (%s)
- Tomorrow: %s
- This week: %s to %s
Resolve relative dates against these values. Dates are YYYY-MM-DD, times are HH:MM (24h).`
)

// Error messages
const (
	ErrMsgModelCallFailed = "model call failed"
	ErrMsgAttemptRejected = "model output rejected"
)
