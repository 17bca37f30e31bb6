package main

import "github.com/Bnei-Baruch/kvo/cmd"

func main() {
	cmd.Execute()
}
