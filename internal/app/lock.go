package app

import (
	"encoding/json"

	"go.bendn.dev/gpm/internal/core/domain"
	"go.trai.ch/zerr"
)

// encodeLock serializes lock entries as a pretty-printed JSON array,
// preserving the given order.
func encodeLock(entries []domain.LockEntry) (string, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrLockEncodeFailed.Error())
	}
	return string(data), nil
}
