package main

import "github.com/thirdweb-dev/watcher/cmd"

func main() {
	cmd.Execute()
}
