package main

import (
	"fmt"

	"github.com/y4hyya/Stellend/cmd"
)

var (
	version string
	commit  string
)

func main() {
	cmd.Execute(fmt.Sprintf("%s-%s", version, commit))
}
