// package repositories provides the stores backing accounts, sessions and saved videos.
//
// Every store reads and writes JSON values through a [KeyValue] port.
package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/desertthunder/insightboard/internal/shared"
)

// UsersKey holds the JSON array of every registered account.
const UsersKey = "users"

// SessionKey returns the key holding the projection of the user signed in under sessionKey.
func SessionKey(sessionKey string) string {
	return "user:" + sessionKey
}

// VideosKey returns the key holding the saved videos of userID.
func VideosKey(userID string) string {
	return "videos_" + userID
}

// readJSON decodes the value at key into v.
//
// It reports found=false with a nil error when the key is absent. Read and decode
// failures wrap [shared.ErrStorage].
func readJSON(kv KeyValue, key string, v any) (bool, error) {
	raw, found, err := kv.Get(key)
	if err != nil {
		return false, fmt.Errorf("%w: read %s: %v", shared.ErrStorage, key, err)
	}
	if !found {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("%w: decode %s: %v", shared.ErrStorage, key, err)
	}
	return true, nil
}

// writeJSON encodes v and stores it under key.
func writeJSON(kv KeyValue, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", shared.ErrStorage, key, err)
	}

	if err := kv.Set(key, string(data)); err != nil {
		return fmt.Errorf("%w: write %s: %v", shared.ErrStorage, key, err)
	}
	return nil
}
