// Package newline translates a configured newline preference into the
// concrete byte sequence the writer emits.
package newline

import (
	"runtime"
	"strings"
)

// Recognized preference values, matching the printer.Config.NewLineKind
// option.
const (
	PreferenceCRLF   = "\r\n"
	PreferenceLF     = "\n"
	PreferenceAuto   = "auto"
	PreferenceSystem = "system"
)

// Concrete resolved sequences.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// Resolve returns the concrete newline sequence ("\n" or "\r\n") for the
// given preference. sourceText is only consulted for PreferenceAuto and may
// be empty otherwise.
//
// "auto" uses a majority vote: if CR occurrences exceed half of LF
// occurrences the source is treated as CRLF, otherwise LF. This is the
// binding reading chosen in SPEC_FULL.md over the alternative "any CR
// anywhere implies CRLF", which would let a single stray CR flip an
// otherwise-LF document.
func Resolve(preference string, sourceText string) string {
	switch preference {
	case PreferenceCRLF:
		return CRLF
	case PreferenceLF:
		return LF
	case PreferenceSystem:
		return systemDefault()
	case PreferenceAuto:
		return inferFromSource(sourceText)
	default:
		return LF
	}
}

func systemDefault() string {
	if runtime.GOOS == "windows" {
		return CRLF
	}
	return LF
}

func inferFromSource(text string) string {
	cr := strings.Count(text, "\r")
	lf := strings.Count(text, "\n")
	if float64(cr) > float64(lf)/2 {
		return CRLF
	}
	return LF
}
