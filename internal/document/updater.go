package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
)

// Field paths of the version value.
var (
	VersionPath        = []string{"version"}
	SwaggerVersionPath = []string{"info", "version"}
)

// Options configures an Updater.
type Options struct {
	// Root is the directory the configured file paths are relative to.
	Root string

	// Spacing is the indentation width used when rewriting files.
	Spacing int

	// Swagger reads the current version from info.version. The new value is
	// still written to the top-level version field unless SwaggerWriteInfo
	// is set.
	Swagger          bool
	SwaggerWriteInfo bool

	// DryRun reports differences without writing any file.
	DryRun bool
}

// FileResult describes what happened to one configured file.
type FileResult struct {
	Path     string
	Format   Format
	Previous string
	Changed  bool
}

// Updater writes a version into structured files.
type Updater struct {
	opts Options
}

// NewUpdater creates a new Updater.
func NewUpdater(opts Options) *Updater {
	return &Updater{opts: opts}
}

func (u *Updater) readPath() []string {
	if u.opts.Swagger {
		return SwaggerVersionPath
	}
	return VersionPath
}

func (u *Updater) writePath() []string {
	if u.opts.Swagger && u.opts.SwaggerWriteInfo {
		return SwaggerVersionPath
	}
	return VersionPath
}

// UpdateAll updates every file in order and reports whether any changed.
// The first failure stops the loop; files already written stay written.
func (u *Updater) UpdateAll(files []string, version string) ([]FileResult, bool, error) {
	results := make([]FileResult, 0, len(files))
	changed := false

	for _, file := range files {
		res, err := u.Update(file, version)
		if err != nil {
			return results, changed, err
		}
		results = append(results, res)
		changed = changed || res.Changed
	}

	return results, changed, nil
}

// Update writes version into a single file, relative to the updater root.
// The file is left untouched when it already holds version.
func (u *Updater) Update(file, version string) (FileResult, error) {
	res := FileResult{Path: file}

	format, err := FormatFor(file)
	if err != nil {
		return res, err
	}
	res.Format = format

	path := filepath.Join(u.opts.Root, file)
	info, err := os.Stat(path)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", file, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", file, err)
	}

	doc, err := Decode(format, data, u.opts.Spacing)
	if err != nil {
		return res, fmt.Errorf("%s: %w", file, err)
	}

	current, ok := doc.Get(u.readPath()...)
	res.Previous = current
	if ok && current == version {
		logger.Infof("  - %s: Skip since equal versions", file)
		return res, nil
	}

	logger.Infof("  - %s: Update version from %q to %q", file, current, version)
	res.Changed = true
	if u.opts.DryRun {
		return res, nil
	}

	if err := doc.Set(version, u.writePath()...); err != nil {
		return res, fmt.Errorf("%s: setting version: %w", file, err)
	}
	out, err := doc.Encode()
	if err != nil {
		return res, fmt.Errorf("%s: %w", file, err)
	}
	if bytes.HasSuffix(data, []byte("\n")) && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}

	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("writing %s: %w", file, err)
	}
	return res, nil
}
