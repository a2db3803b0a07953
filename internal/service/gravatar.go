package service

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const (
	gravatarBase    = "https://www.gravatar.com/avatar/"
	gravatarOptions = "?s=200&r=pg&d=mm"
)

// GravatarURL returns the avatar URL for email: 200px, pg rated, mystery-man fallback
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return gravatarBase + hex.EncodeToString(sum[:]) + gravatarOptions
}
