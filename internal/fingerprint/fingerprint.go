// Package fingerprint computes deterministic cache keys for a resume and job
// description pair.
package fingerprint

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Sum returns a hex-encoded SHA-256 digest over the resume text and job
// description. Each part is length-prefixed before hashing so that the pair
// ("ab","c") never collides with ("a","bc") and swapping the arguments always
// changes the digest. The digest is a cache key, not a security primitive.
func Sum(resumeText, jobDesc string) string {
	h := sha256.New()
	writePart(h, resumeText)
	writePart(h, jobDesc)
	return hex.EncodeToString(h.Sum(nil))
}

func writePart(h interface{ Write([]byte) (int, error) }, part string) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(part)))
	_, _ = h.Write(length[:])
	_, _ = h.Write([]byte(part))
}
