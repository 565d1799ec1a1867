// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"eratos/internal/version"
)

// UsageCommon installs the help text on fs. It prints to fs.Output().
func UsageCommon(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – Sieve of Eratosthenes prime generator\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [flags] [limit]\n", name)
		fmt.Fprintf(out, "  %s -n 100 -f primes.csv\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "  -n, --limit uint            Upper limit, between 2 and %d [*]\n", MaxLimit)
		fmt.Fprintln(out, "                              Prompted for when omitted")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -f, --file path             Write primes to a CSV file ('-' = stdout, .gz = gzip)")
		fmt.Fprintln(out, "  -o, --output string         Output: text | csv [text on screen, csv for files]")
		fmt.Fprintf(out, "      --max-memory size       Sieve memory budget, e.g. 512M (0=physical memory) [%s]\n", def("max-memory"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --no-prompt             Never prompt on stdin [%s]\n", def("no-prompt"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings and status lines [%s]\n", def("quiet"))
		fmt.Fprintln(out, "                              Prompts for missing values are still shown")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

		fmt.Fprintf(out, "\nExample: %s -f output.csv -n 100\n", name)
		fmt.Fprintln(out, "Generates the primes up to 100 and saves them to output.csv")
	}
}
