package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumepdf [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Write the résumé PDF (default)")
	fmt.Fprintln(w, "  inspect    Show page count and metadata of a PDF")
	fmt.Fprintln(w, "  doctor     Check the browser and output directory")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'resumepdf help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumepdf [generate] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the résumé PDF. With no flags the file goes to")
	fmt.Fprintln(w, "public/Joseph_Cannon_Resume.pdf on US Letter paper.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --html                Also write the intermediate HTML")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w, "      --verify              Re-open the PDF and report its page count")
	fmt.Fprintln(w, "      --print-config        Print the effective config as YAML and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --variant <s>         Content variant: concise (default), detailed")
	fmt.Fprintln(w, "      --all-variants        Write <output>-<variant>.pdf for every variant")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers for --all-variants (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --backend <s>         Render engine: native (default), chrome")
	fmt.Fprintln(w, "  -t, --timeout <d>         Render timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --margin-top <f>      Top margin in inches (default 0.5)")
	fmt.Fprintln(w, "      --margin-right <f>    Right margin in inches (default 0.6)")
	fmt.Fprintln(w, "      --margin-bottom <f>   Bottom margin in inches (default 0.5)")
	fmt.Fprintln(w, "      --margin-left <f>     Left margin in inches (default 0.6)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ok, 1 general, 2 usage/config, 3 file system, 4 render")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumepdf inspect <file.pdf> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show page count, title, author and size of a PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --text                Print extracted text")
	fmt.Fprintln(w, "      --json                Print the report as JSON")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumepdf doctor [--json] [-c, --config PATH]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome availability (chrome backend), the temp directory,")
	fmt.Fprintln(w, "and that the output directory is writable. The output directory")
	fmt.Fprintln(w, "comes from RESUMEPDF_OUTPUT, then the config file, then the default.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: resumepdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: resumepdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
