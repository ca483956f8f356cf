package moderation

import (
	"bufio"
	"bytes"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// WordList is the merged content of the censored word sources.
type WordList struct {
	Words     []string
	Languages []string
}

// LoadWordFiles reads every *.txt file of dir in fsys, one word per line.
// The file name is taken as the language ("fr.txt" -> "fr").
func LoadWordFiles(fsys fs.FS, dir string) (WordList, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return WordList{}, err
	}

	var list WordList
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		list.Languages = append(list.Languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return WordList{}, err
		}
		// Scanner handles both \n and \r\n endings.
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			list.Words = append(list.Words, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return WordList{}, err
		}
	}
	list.Words = Merge(list.Words)
	return list, nil
}

// Merge trims, deduplicates and sorts word lists, dropping blanks.
func Merge(lists ...[]string) []string {
	words := lo.Uniq(lo.Compact(lo.Map(lo.Flatten(lists), func(w string, _ int) string {
		return strings.TrimSpace(w)
	})))
	sort.Strings(words)
	return words
}
