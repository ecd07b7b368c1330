package canonical

const (
	logPrefix = "pkg.canonical"

	// HashShortLen is the number of hex characters used in human-readable ids.
	HashShortLen = 24

	// UnknownTurnKey replaces an empty turn key.
	UnknownTurnKey = "unknown"

	RequestIDPrefix      = "req:"
	IdempotencyKeyPrefix = "idem:"
)
