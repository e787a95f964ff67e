package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Command is a console command with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and reads flag state and FlagSet.Args().
// The string Run returns is shown in the console.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func() (string, error)
}

// Registry holds commands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a command. name is the first token of a console line (e.g. "mode").
// usage is a one-line synopsis for help. fs is that command's FlagSet (nil for none); run is
// called after fs.Parse(args[1:]) succeeds. Flag parse errors are returned, not printed.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func() (string, error)) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Parse splits a console line into fields. A leading ':' is allowed (":mode edit").
// Blank lines and lines starting with '#' return ok false.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimSpace(line)
	line = strings.TrimSpace(strings.TrimPrefix(line, ":"))
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false
	}
	return strings.Fields(line), true
}

// Execute runs the command in args[0] with args[1:] as flag/positional arguments.
// Flags are reset to their defaults first so one run does not leak into the next.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("missing command")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return "", fmt.Errorf("unknown command: %s (try help)", name)
	}
	cmd.FlagSet.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return "", fmt.Errorf("%s: %w (usage: %s)", name, err, cmd.Usage)
	}
	return cmd.Run()
}

// ExecuteLine parses and runs one console line. Blank lines do nothing.
func (r *Registry) ExecuteLine(line string) (string, error) {
	args, ok := Parse(line)
	if !ok {
		return "", nil
	}
	return r.Execute(args)
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one usage line per command, sorted by name.
func (r *Registry) Help() string {
	var b strings.Builder
	for i, n := range r.Names() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.cmds[n].Usage)
	}
	return b.String()
}
