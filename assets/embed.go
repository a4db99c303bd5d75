// apps/go-cli/assets/embed.go
//
// Embedded default word lists, used when no word files or word DB are configured.
//   - answers.txt: secret candidates.
//   - allowed.txt: extra accepted guesses (answers are accepted too).
//
// Only the raw files live here; parsing and normalization belong to the words
// package (words.ReadWords), so embedded and on-disk lists share one format.
package assets

import (
	"embed"
	"io/fs"
)

// Names of the embedded lists.
const (
	Answers = "answers.txt"
	Allowed = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var lists embed.FS

// Open returns one of the embedded lists by name.
func Open(name string) (fs.File, error) {
	return lists.Open(name)
}
