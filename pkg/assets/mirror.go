package assets

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// mirror recursively copies the contents of src into the existing directory
// dst. Dot entries are copied, excluded entries are skipped at any depth and
// symlinks are recreated as links when the filesystem allows it.
func (p *Publisher) mirror(src, dst string) error {
	return p.mirrorDir(src, dst, "", map[string]bool{})
}

// visiting holds the real paths of the directories on the current branch,
// so a link loop is reported instead of recursing forever.
func (p *Publisher) mirrorDir(src, dst, rel string, visiting map[string]bool) error {
	resolved, err := p.fs.Realpath(src)
	if err != nil {
		resolved = src
	}
	if visiting[resolved] {
		return fmt.Errorf("symlink loop at %s", src)
	}
	visiting[resolved] = true
	defer delete(visiting, resolved)

	entries, err := p.fs.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		entryRel := path.Join(rel, name)
		if p.excluded(name, entryRel) {
			p.logger.Trace().Str("entry", entryRel).Msg("Skipping excluded entry")
			continue
		}

		from := filepath.Join(src, name)
		to := filepath.Join(dst, name)

		info, err := p.fs.Lstat(from)
		if err != nil {
			return err
		}

		if info.Mode()&fs.ModeSymlink != 0 {
			if p.copyLink(from, to) {
				continue
			}
			// The link could not be recreated; copy what it points to.
			if info, err = p.fs.Stat(from); err != nil {
				return err
			}
		}

		if info.IsDir() {
			if err := p.fs.MkdirAll(to, info.Mode().Perm()|0700); err != nil {
				return err
			}
			if err := p.mirrorDir(from, to, entryRel, visiting); err != nil {
				return err
			}
			continue
		}

		if err := p.copyFile(from, to, info.Mode().Perm()); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) excluded(name, rel string) bool {
	for _, g := range p.excludes {
		if g.Match(name) || g.Match(rel) {
			return true
		}
	}
	return false
}

// copyLink recreates the symlink at from as to, reporting whether it could
func (p *Publisher) copyLink(from, to string) bool {
	dest, err := p.fs.Readlink(from)
	if err != nil {
		return false
	}
	if err := p.fs.Symlink(dest, to); err != nil {
		return false
	}
	return true
}

func (p *Publisher) copyFile(from, to string, perm fs.FileMode) error {
	in, err := p.fs.OpenFile(from, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := p.fs.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// OpenFile applies the umask; the copy keeps the source's exact bits.
	return p.fs.Chmod(to, perm)
}
