package main

import "github.com/emsuite/ems-cli/internal/cmd"

func main() {
	cmd.Execute()
}
