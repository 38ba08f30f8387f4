package main

import "ministry/cmd/client/cmd"

func main() {
	cmd.Execute()
}
