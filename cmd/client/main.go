package main

import "uptime/cmd/client/cmd"

func main() {
	cmd.Execute()
}
