package main

import "github.com/onesocial/cli/internal/cmd"

func main() {
	cmd.Execute()
}
