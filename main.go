package main

import (
	"github.com/mj1618/blanqr/cmd"

	_ "github.com/mj1618/blanqr/internal/platform/win32"
)

func main() {
	cmd.Execute()
}
