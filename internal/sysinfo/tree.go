package sysinfo

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/actions-keep-alive/internal/system"
)

const (
	DefaultTreeDepth   = 2
	DefaultTreeEntries = 120
)

// ignoredNames are never listed in the tree.
var ignoredNames = map[string]bool{".git": true}

// Tree renders the directory tree under root, directories first, down to
// maxDepth levels below root and at most maxEntries entries in total.
func Tree(fsys system.FileSystem, root string, maxDepth, maxEntries int) string {
	w := &treeWalker{fsys: fsys, root: root, maxDepth: maxDepth, maxEntries: maxEntries}

	name := filepath.Base(root)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = root
	}
	lines := append([]string{strings.TrimSuffix(name, "/") + "/"}, w.walk("", "", 0)...)
	if w.truncated {
		lines = append(lines, "... (tree truncated)")
	}
	return strings.Join(lines, "\n")
}

type treeWalker struct {
	fsys       system.FileSystem
	root       string
	maxDepth   int
	maxEntries int
	count      int
	truncated  bool
}

// walk lists rel (relative to root). Child paths are resolved with
// SecureJoin so symlinked directories cannot lead the walk outside root.
func (w *treeWalker) walk(rel, prefix string, depth int) []string {
	if depth > w.maxDepth || w.truncated {
		return nil
	}

	dir, err := securejoin.SecureJoin(w.root, rel)
	if err != nil {
		return []string{prefix + "└── [permission denied]"}
	}

	entries, err := w.fsys.ReadDir(dir)
	if err != nil {
		return []string{prefix + "└── [permission denied]"}
	}
	entries = sortEntries(entries)

	var lines []string
	for i, entry := range entries {
		if w.count >= w.maxEntries {
			w.truncated = true
			break
		}
		w.count++

		last := i == len(entries)-1
		connector := "├── "
		if last {
			connector = "└── "
		}

		suffix := ""
		if entry.IsDir() {
			suffix = "/"
		}
		lines = append(lines, prefix+connector+entry.Name()+suffix)

		if entry.IsDir() && depth < w.maxDepth && !w.truncated {
			childPrefix := prefix + "│   "
			if last {
				childPrefix = prefix + "    "
			}
			lines = append(lines, w.walk(filepath.Join(rel, entry.Name()), childPrefix, depth+1)...)
		}
	}
	return lines
}

// sortEntries drops ignored names and orders directories before files,
// each group by name.
func sortEntries(entries []fs.DirEntry) []fs.DirEntry {
	kept := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		if !ignoredNames[e.Name()] {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].IsDir() != kept[j].IsDir() {
			return kept[i].IsDir()
		}
		return kept[i].Name() < kept[j].Name()
	})
	return kept
}
