// Package format turns entry metadata into display strings.
package format

import (
	"fmt"
	"io/fs"

	"github.com/dustin/go-humanize"
	"github.com/hayeah/lstr/tree"
)

var units = []struct {
	size uint64
	name string
}{
	{humanize.TiByte, "TiB"},
	{humanize.GiByte, "GiB"},
	{humanize.MiByte, "MiB"},
	{humanize.KiByte, "KiB"},
}

// Size renders a byte count with binary units and one decimal, e.g. "500 B",
// "1.5 KiB" or "15.0 KiB". TiB is the largest unit.
func Size(n int64) string {
	if n < 0 {
		n = 0
	}
	b := uint64(n)
	for _, u := range units {
		if b >= u.size {
			return fmt.Sprintf("%.1f %s", float64(b)/float64(u.size), u.name)
		}
	}
	return fmt.Sprintf("%d B", b)
}

// Permissions renders an ls-style mode string such as "drwxr-xr-x".
func Permissions(kind tree.Kind, mode fs.FileMode) string {
	var typ byte = '-'
	switch kind {
	case tree.Dir:
		typ = 'd'
	case tree.Symlink:
		typ = 'l'
	}
	// Perm().String() is "-rwxrwxrwx"; the first byte is the type slot.
	return string(typ) + mode.Perm().String()[1:]
}
