// Package main provides the udb CLI application.
// udb provisions a MariaDB server and the universal database schema
// on a Linux host.
package main

import "github.com/udbtool/udb/cmd"

func main() {
	cmd.Execute()
}
