// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import "github.com/dalzilio/xadd/cmd/xadd/cmd"

func main() {
	cmd.Execute()
}
