package filter

import (
  "strings"
  "unicode"

  set "github.com/deckarep/golang-set/v2"
  "github.com/ushakovn/sumki/pkg/stringer"
)

var defaultRoots = []string{
  "хуй", "хуе", "хуё", "хуя", "пизд", "ебат", "ебал", "ебан", "ебну", "заеб", "уеб", "выеб",
  "бляд", "блят", "сука", "суки", "мудак", "мудил", "гандон", "пидор", "пидар", "шлюх",
}

// English stems begin ordinary words ("dickens", "shitake"), so they are
// listed as whole word forms.
var defaultWords = []string{
  "fuck", "fucks", "fucked", "fucker", "fuckers", "fucking", "motherfucker",
  "shit", "shits", "shitty", "bullshit",
  "bitch", "bitches", "cunt", "cunts",
  "dick", "dicks", "dickhead", "asshole", "assholes",
}

// Filter rejects text containing a word that starts with one of its roots
// or equals one of its word forms.
type Filter struct {
  roots set.Set[string]
  words set.Set[string]
}

// New builds a filter over roots; the default roots are used when none are
// given. The English word forms always apply.
func New(roots ...string) *Filter {
  if len(roots) == 0 {
    roots = defaultRoots
  }
  f := &Filter{
    roots: set.NewThreadUnsafeSet[string](),
    words: set.NewThreadUnsafeSet[string](),
  }
  for _, root := range roots {
    f.roots.Add(stringer.Fold(root))
  }
  for _, word := range defaultWords {
    f.words.Add(word)
  }
  return f
}

func (f *Filter) IsClean(text string) bool {
  for _, word := range words(text) {
    if f.words.ContainsOne(word) || f.matches(word) {
      return false
    }
  }
  return true
}

func (f *Filter) matches(word string) bool {
  runes := []rune(word)

  for size := 1; size <= len(runes); size++ {
    if f.roots.ContainsOne(string(runes[:size])) {
      return true
    }
  }
  return false
}

func words(text string) []string {
  return strings.FieldsFunc(stringer.Fold(text), func(r rune) bool {
    return !unicode.IsLetter(r)
  })
}
