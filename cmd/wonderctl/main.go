// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command wonderctl queries the embedded wonder catalogue from the terminal.
package main

import "github.com/taibuivan/worldwonders/internal/cli"

func main() {
	cli.Execute()
}
