package deployer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

var numericPattern = regexp.MustCompile(`^\d+$`)

// TextToFelt252 turns a token name or symbol into the numeric felt the
// deployment script passes to the constructor. Numeric input is used as is;
// other text becomes the sum of its UTF-16 code units times 256.
func TextToFelt252(text string) string {
	trimmed := strings.TrimSpace(text)
	if numericPattern.MatchString(trimmed) {
		return trimmed
	}

	var sum uint64
	for _, unit := range utf16.Encode([]rune(text)) {
		sum += uint64(unit)
	}
	return strconv.FormatUint(sum*256, 10)
}
