package id

import (
	"strings"

	"github.com/segmentio/ksuid"
)

const (
	CategoryPrefix = "cat_"
	ProductPrefix  = "prod_"
)

// GenerateIDWithPrefix creates a new KSUID with the given prefix.
// KSUIDs are time-ordered, collision-resistant, and URL-safe.
//
// Format: <prefix><27-char-ksuid>
// Example: prod_2ArTLVPddDx8vZk7CqEbiYp1
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}

// ValidWithPrefix reports whether s is a prefixed KSUID produced by
// GenerateIDWithPrefix for the same prefix.
func ValidWithPrefix(s, prefix string) bool {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return false
	}
	_, err := ksuid.Parse(rest)
	return err == nil
}
