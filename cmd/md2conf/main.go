package main

import "github.com/dgallion1/md2conf/internal/cli"

func main() {
	cli.Execute()
}
