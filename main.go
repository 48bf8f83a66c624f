package main

import "github.com/nsyszr/gridadmin/cmd"

func main() {
	cmd.Execute()
}
