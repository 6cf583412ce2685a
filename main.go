package main

import "github.com/0xDVC/hellocpu/cmd"

func main() {
	cmd.Execute()
}
