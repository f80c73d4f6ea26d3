package main

import (
	"os"

	"notesbackup/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
