package main

import "github.com/jsphweid/scorepoint/cmd"

func main() {
	cmd.Execute()
}
