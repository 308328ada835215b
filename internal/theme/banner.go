package theme

import (
	"fmt"
)

// Banner returns the CLI banner.
func Banner() string {
	const cyan = "\033[36m"
	const yellow = "\033[33m"
	const reset = "\033[0m"

	art := "" +
		cyan + "   __    _         __\n" + reset +
		cyan + "  / /_  (_)________/ /_____________  ____  ___\n" + reset +
		cyan + " / __ \\/ / ___/ __  / ___/ ___/ __ \\/ __ \\/ _ \\\n" + reset +
		cyan + "/ /_/ / / /  / /_/ (__  ) /__/ /_/ / /_/ /  __/\n" + reset +
		cyan + "\\____/_/_/   \\__,_/____/\\___/\\____/ .___/\\___/\n" + reset +
		cyan + "                                 /_/\n" + reset +
		yellow + "  timeline analytics for X profiles\n" + reset
	return art
}

// PrintBanner prints the banner to stdout.
func PrintBanner() {
	fmt.Print(Banner())
}
