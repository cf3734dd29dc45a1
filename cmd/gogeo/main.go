package main

import "github.com/philipparndt/gogeo/cmd"

func main() {
	cmd.Execute()
}
