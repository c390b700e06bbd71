package main

import "api_pos/internal/commands"

func main() {
	commands.Execute()
}
