package wrapio

import (
	"io"
	"os"

	"github.com/google/renameio"
)

// WriteFileAtomic creates a pending file next to path, hands it to write,
// and only replaces path (with the given permissions) once write has
// returned without error. On any failure path is left untouched.
func WriteFileAtomic(path string, perm os.FileMode, write func(w io.Writer) error) (rerr error) {
	pf, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := pf.Cleanup(); rerr == nil {
			rerr = cerr
		}
	}()
	if err := pf.Chmod(perm); err != nil {
		return err
	}
	if err := write(pf); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}
