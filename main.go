package main

import "github.com/notargets/goquad/cmd"

func main() {
	cmd.Execute()
}
