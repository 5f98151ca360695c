package main

import "github.com/threadloom/threadloom/cmd"

func main() {
	cmd.Execute()
}
