package main

import "status-notifier/cmd"

func main() {
	cmd.Execute()
}
