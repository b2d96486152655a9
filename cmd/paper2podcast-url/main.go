// Command paper2podcast-url downloads a paper from arXiv, IEEE Xplore or ACM
// and turns it into a podcast script and an audio file.
package main

import (
	"os"

	"github.com/nguyentantai21042004/paper2podcast/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.ModeRemote, os.Args[1:]))
}
