package main

import (
	"fmt"
	"os"

	"github.com/zeu5/rmdp/rmdp"
)

// loadModel reads an RMDP from inputFile, or stdin when inputFile is
// empty.
func loadModel() (*rmdp.RMDP, error) {
	if inputFile == "" {
		return rmdp.Import(os.Stdin, withHeader)
	}
	return rmdp.ImportFile(inputFile, withHeader)
}

// writeModel writes m to outputFile, or stdout when outputFile is
// empty.
func writeModel(m *rmdp.RMDP) error {
	if outputFile == "" {
		return rmdp.Export(os.Stdout, m, withHeader)
	}
	return rmdp.ExportFile(outputFile, m, withHeader)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
