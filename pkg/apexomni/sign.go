package apexomni

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"sort"
	"strings"
)

// Request headers of the private API
const (
	HeaderSignature  = "APEX-SIGNATURE"
	HeaderTimestamp  = "APEX-TIMESTAMP"
	HeaderAPIKey     = "APEX-API-KEY"
	HeaderPassphrase = "APEX-PASSPHRASE"
)

// Sign computes the request signature.
// The HMAC key is the base64 encoding of the secret, not the decoded secret.
func Sign(secret, timestamp, method, path, data string) string {
	key := base64.StdEncoding.EncodeToString([]byte(secret))
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(timestamp + method + path + data))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// encodeQuery joins non-empty params as key=value pairs sorted by key.
// Values are not escaped; the signature covers the raw pairs.
func encodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	return strings.Join(pairs, "&")
}
