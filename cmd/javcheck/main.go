package main

import (
	"github.com/bthstudent/javcheck/cli"
	basecmd "github.com/bthstudent/javcheck/cmd"
)

func main() {
	basecmd.Run(&cli.Root{}, cli.Name, cli.Description, cli.ConfigPaths...)
}
