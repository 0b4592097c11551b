package rmdp

import "os"

// openFile and createFile exist only to keep the os package import
// local to one file; ImportFile/ExportFile are the scoped acquisitions
// spec.md §5 requires (opened on entry, closed on every exit path).
func openFile(path string) (*os.File, error) {
	return os.Open(path)
}

func createFile(path string) (*os.File, error) {
	return os.Create(path)
}
