// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -p, -algo, -data, -seed, -output, -verbose, -version

package main

import "flag"

type cliArgs struct {
	prompt  string
	algo    string
	dataDir string
	seed    string
	output  string
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.prompt, "p", "", "Resolve one utterance and exit (reads stdin when empty)")
	flag.StringVar(&args.algo, "algo", "", "Matching algorithm: kmp or bm")
	flag.StringVar(&args.dataDir, "data", "", "Knowledge-base directory")
	flag.StringVar(&args.seed, "seed", "", "YAML seed corpus imported on first run")
	flag.StringVar(&args.output, "output", "text", "Print-mode output format: text or json")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
