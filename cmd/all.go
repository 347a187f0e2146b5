package cmd

import (
	_ "fastos/cmd/desktop"
	_ "fastos/cmd/logs"
	_ "fastos/cmd/root"
	_ "fastos/cmd/run"
	_ "fastos/cmd/server"
	_ "fastos/cmd/service"
	_ "fastos/cmd/system"
)
