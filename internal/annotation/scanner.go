package annotation

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// parserFor returns the front end for a file extension, or nil.
func parserFor(ext string) func(string, io.Reader) ([]*Class, error) {
	switch strings.ToLower(ext) {
	case ".py":
		return ParsePython
	case ".java":
		return ParseJava
	}
	return nil
}

// ParseFile parses a single source file, picking the front end by extension.
// lang overrides detection ("python" or "java"); empty means auto.
func ParseFile(path, lang string) ([]*Class, error) {
	parse := parserFor(filepath.Ext(path))
	switch lang {
	case "python":
		parse = ParsePython
	case "java":
		parse = ParseJava
	case "", "auto":
	default:
		return nil, fmt.Errorf("unsupported language %q (python or java)", lang)
	}
	if parse == nil {
		return nil, fmt.Errorf("cannot detect language of %s (use --lang)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(path, f)
}

// ScanPaths walks the given files/directories and parses every recognized
// source file. Directory walks visit files in lexical order, so repeated runs
// over the same tree produce the same class sequence. A class name declared
// twice across the set is an error.
func ScanPaths(paths []string, lang string) ([]*Class, error) {
	var classes []*Class
	seen := make(map[string]string) // class name -> file

	collect := func(path string) error {
		parsed, err := ParseFile(path, lang)
		if err != nil {
			return err
		}
		for _, c := range parsed {
			if prev, ok := seen[c.Name]; ok {
				return fmt.Errorf("duplicate class %q in %s (already declared in %s)", c.Name, path, prev)
			}
			seen[c.Name] = path
			classes = append(classes, c)
		}
		return nil
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if err := collect(p); err != nil {
				return nil, err
			}
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() || parserFor(filepath.Ext(path)) == nil {
				return nil
			}
			return collect(path)
		})
		if err != nil {
			return nil, err
		}
	}

	if len(classes) == 0 {
		return nil, fmt.Errorf("no annotated classes found under %v", paths)
	}
	return classes, nil
}
