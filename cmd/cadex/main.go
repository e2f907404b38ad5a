package main

import "cadex/cmd/cadex/cmd"

func main() {
	cmd.Execute()
}
