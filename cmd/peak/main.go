package main

import "peak/cmd/peak/root"

func main() {
	root.Execute()
}
