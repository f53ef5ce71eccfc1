// overlay.go copies one layer's directory tree into the target directory.
package compiler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// overlayTree recursively copies the contents of src into dst, creating
// missing destination directories and never replacing a file that already
// exists. The compiler applies chain layers in resolver order, so the first
// layer to supply a path wins. Returns the number of files placed.
func overlayTree(src, dst string) (int, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, src, err)
	}
	if err := os.MkdirAll(dst, 0o750); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrCreateDir, dst, err)
	}

	placed := 0
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			n, err := overlayTree(srcPath, dstPath)
			placed += n
			if err != nil {
				return placed, err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}

		// An earlier (higher-priority) layer already supplied this path.
		if _, err := os.Lstat(dstPath); err == nil {
			continue
		}

		if err := copyFile(srcPath, dstPath); err != nil {
			return placed, fmt.Errorf("%w: %s -> %s: %v", ErrCopy, srcPath, dstPath, err)
		}
		placed++
	}
	return placed, nil
}

// copyFile copies a single regular file. O_EXCL guards against racing the
// existence check above.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
