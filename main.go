package main

import "github.com/anixlabs/profilectl/cmd"

func main() {
	cmd.Execute()
}
