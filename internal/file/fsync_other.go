//go:build !unix

package file

import "os"

func fsyncFile(f *os.File) error {
	return f.Sync()
}
