// Package fsutil provides filename hygiene and pattern-based directory
// listing helpers.
package fsutil

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultStripSet holds the characters CleanFilename removes: clutter
// and characters that are illegal or awkward in filenames.
const DefaultStripSet = " %:/,.\\[]"

// CleanFilename removes every character in DefaultStripSet from s,
// preserving the order and case of the remaining characters.
func CleanFilename(s string) string {
	return CleanFilenameStrip(s, DefaultStripSet)
}

// CleanFilenameStrip removes every character in strip from s.
func CleanFilenameStrip(s, strip string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(strip, r) {
			return -1
		}
		return r
	}, s)
}

// Exists reports whether a file or directory exists at the given path.
func Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// MatchMode selects how ListFiles patterns are interpreted.
type MatchMode int

const (
	// MatchGlob matches base names with shell-style wildcards
	// (*, ?, [...]). The whole name must match.
	MatchGlob MatchMode = iota

	// MatchRegex searches base names with a regular expression.
	// Substring-search semantics: the pattern need not span the name.
	MatchRegex
)

// ListOptions controls a ListFiles traversal.
type ListOptions struct {
	// Recurse extends the search into subdirectories of the root.
	Recurse bool

	// IncludeDirs also tests directory names against the patterns.
	IncludeDirs bool

	// Mode selects glob or regex pattern interpretation.
	Mode MatchMode
}

// ListFiles walks the directory tree rooted at root and returns the
// paths of entries whose base name matches any of the semicolon
// separated patterns, tested in order with the first match winning.
// Results preserve traversal order, parents before descendants. A
// non-existent root yields an empty list and no error. In regex mode a
// pattern that fails to compile is an error.
func ListFiles(root, patterns string, opts ListOptions) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, nil
	}
	rel, err := ListFilesFS(os.DirFS(root), patterns, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rel))
	for i, p := range rel {
		out[i] = filepath.Join(root, filepath.FromSlash(p))
	}
	return out, nil
}

// ListFilesFS is ListFiles over an arbitrary fs.FS. Returned paths are
// slash-separated and relative to the root of fsys.
func ListFilesFS(fsys fs.FS, patterns string, opts ListOptions) ([]string, error) {
	match, err := compileMatcher(patterns, opts.Mode)
	if err != nil {
		return nil, err
	}

	var results []string
	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if p == "." {
			return nil
		}
		if d.IsDir() {
			if opts.IncludeDirs && match(d.Name()) {
				results = append(results, p)
			}
			if !opts.Recurse {
				return fs.SkipDir
			}
			return nil
		}
		if match(d.Name()) {
			results = append(results, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// compileMatcher builds a first-match-wins predicate over the semicolon
// separated pattern list.
func compileMatcher(patterns string, mode MatchMode) (func(string) bool, error) {
	list := strings.Split(patterns, ";")

	if mode == MatchRegex {
		regexps := make([]*regexp.Regexp, len(list))
		for i, p := range list {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, err
			}
			regexps[i] = re
		}
		return func(name string) bool {
			for _, re := range regexps {
				if re.MatchString(name) {
					return true
				}
			}
			return false
		}, nil
	}

	return func(name string) bool {
		for _, p := range list {
			// A malformed glob pattern matches nothing.
			if ok, err := path.Match(p, name); err == nil && ok {
				return true
			}
		}
		return false
	}, nil
}
