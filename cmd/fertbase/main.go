package main

import "github.com/hydrotools/fertbase/cmd/fertbase/cmd"

func main() {
	cmd.Execute()
}
