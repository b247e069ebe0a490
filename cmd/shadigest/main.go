package main

import "massnet.org/shadigest/cmd/shadigest/cmd"

func main() {
	cmd.Execute()
}
