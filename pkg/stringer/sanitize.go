package stringer

import (
  "regexp"
  "strings"
  "unicode/utf8"

  "github.com/microcosm-cc/bluemonday"
  "golang.org/x/net/html"
  "golang.org/x/text/cases"
  "golang.org/x/text/language"
)

var (
  policy         = bluemonday.StrictPolicy()
  lower          = cases.Lower(language.Russian)
  RegexRepeatSep = regexp.MustCompile(`\s{2,}`)
)

func StripTags(s string) string {
  return strings.TrimSpace(policy.Sanitize(s))
}

func Strip(s string) string {
  return strings.TrimSpace(s)
}

func IsEmptyStr(s string) bool {
  return Strip(s) == ""
}

// SanitizeString removes markup from user input and collapses repeated spaces.
func SanitizeString(s string) string {
  s = StripTags(s)
  s = html.UnescapeString(s)
  s = RegexRepeatSep.ReplaceAllLiteralString(s, " ")
  return strings.TrimSpace(s)
}

// Fold lowercases s and maps ё to е.
func Fold(s string) string {
  s = lower.String(s)
  return strings.ReplaceAll(s, "ё", "е")
}

func Or(s, placeholder string) string {
  if IsEmptyStr(s) {
    return placeholder
  }
  return s
}

// SplitRunes cuts s into chunks of at most size runes each.
func SplitRunes(s string, size int) []string {
  if s == "" {
    return nil
  }
  if size <= 0 || utf8.RuneCountInString(s) <= size {
    return []string{s}
  }
  runes := []rune(s)
  chunks := make([]string, 0, len(runes)/size+1)

  for start := 0; start < len(runes); start += size {
    end := min(start+size, len(runes))
    chunks = append(chunks, string(runes[start:end]))
  }
  return chunks
}
