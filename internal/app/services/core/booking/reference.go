package booking

import (
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	referencePrefix         = "APT"
	referenceSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	referenceSuffixLength   = 5
)

// GenerateReference builds a placeholder booking reference: APT, the base-36
// millisecond timestamp and a short random base-36 suffix, upper-cased.
func GenerateReference(now time.Time) (string, error) {
	suffix, err := gonanoid.Generate(referenceSuffixAlphabet, referenceSuffixLength)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(referencePrefix + strconv.FormatInt(now.UnixMilli(), 36) + suffix), nil
}
