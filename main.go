package main

import "github.com/Bitlatte/auraspaces/cmd"

func main() {
	cmd.Execute()
}
