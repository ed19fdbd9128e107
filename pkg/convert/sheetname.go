package convert

import (
	"fmt"
	"strings"
)

// MaxSheetNameLength is the sheet name limit imposed by the xlsx format.
const MaxSheetNameLength = 31

// Excel forbids these characters in sheet names.
var sheetNameReplacer = strings.NewReplacer(
	":", " ",
	"\\", " ",
	"/", " ",
	"?", " ",
	"*", " ",
	"[", " ",
	"]", " ",
)

// SanitizeSheetName makes an arbitrary string usable as an xlsx sheet
// name: forbidden characters become spaces, whitespace runs collapse to
// a single space, and the result is trimmed and cut to 31 characters.
// An empty result falls back to "Sheet".
func SanitizeSheetName(name string) string {
	name = sheetNameReplacer.Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "Sheet"
	}
	if runes := []rune(name); len(runes) > MaxSheetNameLength {
		name = string(runes[:MaxSheetNameLength])
	}
	return name
}

// UniqueSheetName sanitizes candidate and, if the result is already
// taken, appends _2, _3, ... (re-sanitizing each attempt, since the
// suffix can push the name over the length limit) until a free name is
// found. The caller records the returned name in used.
func UniqueSheetName(candidate string, used map[string]struct{}) string {
	base := SanitizeSheetName(candidate)
	name := base
	for suffix := 2; ; suffix++ {
		if _, taken := used[name]; !taken {
			return name
		}
		name = SanitizeSheetName(fmt.Sprintf("%s_%d", base, suffix))
	}
}
