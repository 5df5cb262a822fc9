package main

import "github.com/MyCarrier-DevOps/go-releasebump/cmd"

func main() {
	cmd.Execute()
}
