package main

import "github.com/mabhi256/jlint/cmd"

func main() {
	cmd.Execute()
}
