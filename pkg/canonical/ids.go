package canonical

import (
	"fmt"
	"strings"
)

// Identifiers are the stable ids derived for one side-effecting action.
type Identifiers struct {
	RequestID      string `json:"requestId"`
	IdempotencyKey string `json:"idempotencyKey"`
	HashHex        string `json:"hashHex"`
	HashShort      string `json:"hashShort"`
}

// DeriveIDs hashes the canonical form of {action, args} and builds the
// request id and idempotency key for turnKey. Only the hash ends up in the
// identifiers.
func DeriveIDs(turnKey, action string, args map[string]any) (Identifiers, error) {
	turnKey = strings.TrimSpace(turnKey)
	if turnKey == "" {
		turnKey = UnknownTurnKey
	}

	payload := map[string]any{
		"action": action,
		"args":   args,
	}
	if args == nil {
		payload["args"] = map[string]any{}
	}

	canon, err := Canonicalize(payload)
	if err != nil {
		return Identifiers{}, err
	}

	hashHex := Hash(canon)
	short := Short(hashHex)

	return Identifiers{
		RequestID:      fmt.Sprintf("%s%s:%s", RequestIDPrefix, turnKey, short),
		IdempotencyKey: fmt.Sprintf("%s%s:%s", IdempotencyKeyPrefix, turnKey, short),
		HashHex:        hashHex,
		HashShort:      short,
	}, nil
}
