package main

import "github.com/gaurav-prasanna/pastemark/cmd"

func main() {
	cmd.Execute()
}
