// Command paper2podcast turns a PDF paper, or every PDF in a directory, into a
// podcast script and an audio file.
package main

import (
	"os"

	"github.com/nguyentantai21042004/paper2podcast/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.ModeLocal, os.Args[1:]))
}
