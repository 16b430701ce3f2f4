package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed keys. The version suffix leaves room
// for future algorithm migration without colliding with old keys.
const (
	DomainOrder       = "posetal/order/v1"
	DomainProfile     = "posetal/profile/v1"
	DomainGame        = "posetal/game/v1"
	DomainPreferences = "posetal/preferences/v1"
)

// HashWithDomain computes SHA-256 over domain + 0x00 + data. The null
// separator prevents ambiguity between domain and payload bytes.
func HashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Key canonically marshals v and hashes it under the given domain.
func Key(domain string, v any) (string, error) {
	data, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("canon.Key: %w", err)
	}
	return HashWithDomain(domain, data), nil
}
