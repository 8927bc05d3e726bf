package main

import "college-platform-backend/cmd/server"

func main() {
	server.Init()
	server.Run()
}
