package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// supportedShells lists the shells in help order.
var supportedShells = []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFloat
	flagEnum // has predefined values
	flagFile // file with glob pattern
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// takesValue reports whether the flag consumes the next word.
func (f flagDef) takesValue() bool {
	return f.Type != flagBool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed positional values
	FilePattern string   // glob for file arguments (e.g., "*.pdf")
}

// completionMeta holds completion hints the FlagSet cannot express.
type completionMeta struct {
	Values   []string
	FileGlob string
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"variant":   {Values: []string{"concise", "detailed"}},
	"backend":   {Values: []string{"native", "chrome"}},
	"page-size": {Values: []string{"letter", "a4", "legal"}},

	"config": {FileGlob: "*.yaml,*.yml"},
	"output": {FileGlob: "*.pdf"},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet,
// enriched with flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		case "float32", "float64":
			fd.Type = flagFloat
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags come from the same FlagSets the commands parse with.
func getCommands() []commandDef {
	genFS, _ := newGenerateFlagSet(&generateFlags{})
	inspectFS := newInspectFlagSet(&inspectFlags{})

	names := make([]string, len(supportedShells))
	for i, s := range supportedShells {
		names[i] = string(s)
	}

	return []commandDef{
		{
			Name:  "generate",
			Desc:  "Write the résumé PDF",
			Flags: extractFlagsFromFlagSet(genFS),
		},
		{
			Name:        "inspect",
			Desc:        "Show page count and metadata of a PDF",
			Flags:       extractFlagsFromFlagSet(inspectFS),
			FilePattern: "*.pdf",
		},
		{
			Name:  "doctor",
			Desc:  "Check the browser and output directory",
			Flags: []flagDef{
				{Long: "config", Short: "c", Type: flagFile, Desc: "config file for the output directory", FileGlob: "*.yaml,*.yml"},
				{Long: "json", Type: flagBool, Desc: "print the result as JSON"},
			},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"generate", "inspect", "doctor", "version", "help", "completion"},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: names,
		},
	}
}

// GenerateCompletion writes shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(cmds)
	case ShellZsh:
		script = zshScript(cmds)
	case ShellFish:
		script = fishScript(cmds)
	case ShellPowerShell:
		script = powerShellScript(cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: completion expects one shell name", ErrUsage)
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// commandNames returns the command names in registry order.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// flagWords returns every spelling of the command's flags.
func flagWords(c commandDef) []string {
	var words []string
	for _, f := range c.Flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// globExtensions turns "*.yaml,*.yml" into ["yaml", "yml"].
func globExtensions(glob string) []string {
	var exts []string
	for _, g := range strings.Split(glob, ",") {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(g), "*."))
	}
	return exts
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for resumepdf\n")
	b.WriteString("_resumepdf_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"generate\"\n")
	b.WriteString("    if [[ ${COMP_CWORD} -gt 1 && ${COMP_WORDS[1]} != -* ]]; then\n")
	b.WriteString("        cmd=\"${COMP_WORDS[1]}\"\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 && ${cur} != -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if values := bashValueCases(c); values != "" {
			b.WriteString("        case \"${prev}\" in\n")
			b.WriteString(values)
			b.WriteString("        esac\n")
		}
		words := flagWords(c)
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(c.Args, " "))
		case c.FilePattern != "":
			b.WriteString("        if [[ ${cur} == -* ]]; then\n")
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(words, " "))
			b.WriteString("        else\n")
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -f -X %s -- \"${cur}\") )\n", bashGlobFilter(c.FilePattern))
			b.WriteString("        fi\n")
		case len(words) > 0:
			fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(words, " "))
		}
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -o filenames -F _resumepdf_completions resumepdf\n")
	return b.String()
}

// bashValueCases completes the value of the flag in ${prev}.
func bashValueCases(c commandDef) string {
	var b strings.Builder
	for _, f := range c.Flags {
		if !f.takesValue() {
			continue
		}
		pattern := "--" + f.Long
		if f.Short != "" {
			pattern += "|-" + f.Short
		}
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n            return ;;\n",
				pattern, strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -f -X %s -- \"${cur}\") )\n            return ;;\n",
				pattern, bashGlobFilter(f.FileGlob))
		default:
			fmt.Fprintf(&b, "        %s)\n            return ;;\n", pattern)
		}
	}
	return b.String()
}

// bashGlobFilter builds a compgen -X exclusion keeping only glob matches.
func bashGlobFilter(glob string) string {
	return "'!*.@(" + strings.Join(globExtensions(glob), "|") + ")'"
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func zshScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef resumepdf\n\n")
	b.WriteString("_resumepdf() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(c.Flags) == 0 && len(c.Args) == 0 && c.FilePattern == "" {
			b.WriteString("        _message 'no arguments'\n        ;;\n")
			continue
		}
		b.WriteString("        _arguments -s")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, " \\\n            %s", zshFlagSpec(f))
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, " \\\n            '1:%s:(%s)'", c.Name, strings.Join(c.Args, " "))
		case c.FilePattern != "":
			fmt.Fprintf(&b, " \\\n            '*:file:_files -g \"%s\"'", zshGlob(c.FilePattern))
		}
		b.WriteString("\n        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_resumepdf \"$@\"\n")
	return b.String()
}

// zshFlagSpec renders one _arguments spec.
func zshFlagSpec(f flagDef) string {
	desc := "[" + zshEscape(f.Desc) + "]"
	action := ""
	if f.takesValue() {
		switch f.Type {
		case flagEnum:
			action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
		case flagFile:
			action = ":file:_files -g \"" + zshGlob(f.FileGlob) + "\""
		default:
			action = ":" + f.Long + ": "
		}
	}
	if f.Short == "" {
		return "'--" + f.Long + desc + action + "'"
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

// zshGlob turns "*.yaml,*.yml" into "*.(yaml|yml)".
func zshGlob(glob string) string {
	exts := globExtensions(glob)
	if len(exts) == 1 {
		return "*." + exts[0]
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

var zshReplacer = strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)

func zshEscape(s string) string {
	return zshReplacer.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func fishScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# fish completion for resumepdf\n\n")
	b.WriteString("function __fish_resumepdf_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_resumepdf_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$cmd[2]\" = \"$argv[1]\"\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c resumepdf -f\n\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c resumepdf -n __fish_resumepdf_needs_command -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}

	for _, c := range cmds {
		cond := fishQuote("__fish_resumepdf_using_command " + c.Name)
		b.WriteString("\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c resumepdf -n %s", cond)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			fmt.Fprintf(&b, " -l %s", f.Long)
			switch {
			case f.Type == flagEnum:
				fmt.Fprintf(&b, " -x -a %s", fishQuote(strings.Join(f.Values, " ")))
			case f.Type == flagFile:
				b.WriteString(" -r -F")
			case f.takesValue():
				b.WriteString(" -x")
			}
			fmt.Fprintf(&b, " -d %s\n", fishQuote(f.Desc))
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c resumepdf -n %s -a %s\n", cond, fishQuote(strings.Join(c.Args, " ")))
		}
		if c.FilePattern != "" {
			fmt.Fprintf(&b, "complete -c resumepdf -n %s -F\n", cond)
		}
	}
	return b.String()
}

func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s) + "'"
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func powerShellScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# powershell completion for resumepdf\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName resumepdf -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $command = ''\n")
	b.WriteString("    if ($elements.Count -gt 2 -or ($elements.Count -eq 2 -and $wordToComplete -eq '')) {\n")
	b.WriteString("        $command = $elements[1]\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates = switch ($command) {\n")
	for _, c := range cmds {
		words := append(flagWords(c), c.Args...)
		fmt.Fprintf(&b, "        '%s' { @(%s) }\n", c.Name, psList(words))
	}
	fmt.Fprintf(&b, "        default { @(%s) }\n", psList(commandNames(cmds)))
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

func psList(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + strings.ReplaceAll(w, "'", "''") + "'"
	}
	return strings.Join(quoted, ", ")
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumepdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(resumepdf completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(resumepdf completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    resumepdf completion fish > ~/.config/fish/completions/resumepdf.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    resumepdf completion powershell | Out-String | Invoke-Expression")
}
