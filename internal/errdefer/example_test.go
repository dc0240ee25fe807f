package errdefer_test

import (
	"io"
	"os"
	"path/filepath"

	"go.abhg.dev/hlrange/internal/errdefer"
)

func copyFile(dst, src string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer errdefer.Close(&err, in)

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer errdefer.Close(&err, out)
	// NOTE: err must be a named return.

	_, err = io.Copy(out, in)
	return err
}

// Copying a file has to report failures to close the destination
// as those may indicate a failed write.
func ExampleClose() {
	dir, err := os.MkdirTemp("", "errdefer")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	if err := copyFile(filepath.Join(dir, "copy.go"), "example_test.go"); err != nil {
		panic(err)
	}
}
