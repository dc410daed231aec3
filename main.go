package main

import "github.com/shandysiswandi/gonotif/internal/cli"

// @title           Notification Service API
// @version         1.0
// @description     Transactional email gateway that dispatches messages through a configured provider.
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
func main() {
	cli.Execute()
}
