package main

import "github.com/scriptdeck/scriptdeck/cmd"

func main() {
	cmd.Execute()
}
