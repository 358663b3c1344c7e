package main

import "github.com/c2fo/netstorage/cmd/netstorage/cmd"

func main() {
	cmd.Execute()
}
