package main

import "github.com/cloudpulse/cloudpulse/cmd"

func main() {
	cmd.Execute()
}
