// Copyright
// SPDX-License-Identifier: MIT
// autoformat: format-as-you-type masked input fields for the terminal
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/ogier/pflag"

	"autoformat/internal/config"
	"autoformat/internal/field"
	"autoformat/internal/mask"
	appTUI "autoformat/internal/tui"
	"autoformat/internal/tui/util"
	"autoformat/internal/tui/views/presets"
)

const Version = "0.3.0"

const defaultPresetsFile = "autoformat.yaml"

/* ---------- CLI ---------- */

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	var err error
	switch os.Args[1] {
	case "help", "-h", "--help":
		if len(os.Args) > 2 {
			helpTopic(os.Args[2])
		} else {
			usage()
		}
	case "version", "--version":
		fmt.Println("autoformat", Version)
	case "format":
		err = cmdFormat(os.Args[2:])
	case "unformat":
		err = cmdUnformat(os.Args[2:])
	case "static":
		err = cmdStatic(os.Args[2:])
	case "edit":
		err = cmdEdit(os.Args[2:])
	case "presets":
		err = cmdPresets(os.Args[2:])
	case "init":
		err = cmdInit(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "autoformat:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Print(`autoformat ` + Version + `
Masked input fields: format a value while it is typed, hide it behind a static mask.
USAGE
  autoformat <command> [options]
COMMANDS
  format       Apply an input template to raw values (args or stdin lines)
  unformat     Recover the raw value from formatted text
  static       Render raw values through a static mask
  edit         Edit a masked field (interactive on a terminal, key scripts otherwise)
  presets      List the configured field presets
  init         Write the built-in presets to autoformat.yaml
  help         Show help (try: autoformat help edit)
  version      Print version
NOTES
  • Templates use # for each typed character (change with --placeholder).
  • Static masks copy text verbatim, except [i] and [a-b] which pull raw characters by index.
  • Default output is minimal; use -v or --debug for logs. Use --log-file to tee logs to a file.
`)
}

func helpTopic(name string) {
	switch name {
	case "format", "unformat", "static":
		fmt.Print(`USAGE
  autoformat format   [--mask T | --preset NAME] [--placeholder C] [RAW ...]
  autoformat unformat [--mask T | --preset NAME] [--placeholder C] [--start N] [--end N] [TEXT ...]
  autoformat static   [--static T | --preset NAME] [RAW ...]
DESCRIPTION
  Each command reads its values from the arguments, or one per line from stdin.
  format stops at the last typed character, so "5551" on "(###) ###" gives "(555) 1".
  unformat keeps the characters sitting on placeholder positions of the template,
  optionally restricted to template positions [start, end).
OPTIONS
  -m, --mask T           Input template
  -p, --placeholder C    Placeholder character (default: #)
  -s, --static T         Static mask (default: ***)
      --preset NAME      Take templates from a preset
  -c, --config PATH      Presets file (.json, .yaml, .toml). Default: autoformat.yaml when present
`)
	case "edit":
		fmt.Print(`USAGE
  autoformat edit [--mask T | --preset NAME] [--value RAW] [--static-view] [SCRIPT ...]
DESCRIPTION
  On a terminal, opens an interactive field. Without --mask or --preset a picker
  lists the presets first. The accepted value is printed on exit.
  Otherwise every SCRIPT (or stdin line) is replayed as key presses against one
  field, and the displayed text is printed after each one.
SCRIPTS
  Plain characters are typed. Keys: <bs> <del> <left> <right> <home> <end>
  <sleft> <sright> <clear> <lt> (a literal "<") and <paste:TEXT>.
OPTIONS
  --value RAW            Initial raw value
  --static-view          Start in the static view
  --no-color             Disable colors (NO_COLOR is honored too)
  -v, --verbose          INFO logs (raw value and cursor after each script)
  --debug                DEBUG logs (every reconciliation)
  --log-file PATH        Append logs to file (created if missing)
`)
	default:
		usage()
	}
}

/* ---------- flags & logging ---------- */

type options struct {
	fs          *pflag.FlagSet
	mask        *string
	placeholder *string
	static      *string
	preset      *string
	config      *string
	noColor     *bool
	verbose     *bool
	debug       *bool
	logPath     *string

	verbosity int
	logFile   *os.File
}

func newFlags(name string) *options {
	fs := pflag.NewFlagSet(name, pflag.ExitOnError)
	fs.Usage = func() { helpTopic(name) }
	return &options{
		fs:          fs,
		mask:        fs.StringP("mask", "m", "", "Input template"),
		placeholder: fs.StringP("placeholder", "p", "", "Placeholder character (default #)"),
		static:      fs.StringP("static", "s", "", "Static mask template"),
		preset:      fs.String("preset", "", "Use a named preset"),
		config:      fs.StringP("config", "c", "", "Presets file (.json, .yaml, .toml)"),
		noColor:     fs.Bool("no-color", false, "Disable colors"),
		verbose:     fs.BoolP("verbose", "v", false, "Verbose logs (INFO)"),
		debug:       fs.Bool("debug", false, "Debug logs (DEBUG)"),
		logPath:     fs.String("log-file", "", "Append logs to file (created if missing)"),
	}
}

// parse parses args and derives the verbosity level.
func (o *options) parse(args []string) {
	_ = o.fs.Parse(args)
	if *o.debug {
		o.verbosity = 2
	} else if *o.verbose {
		o.verbosity = 1
	}
}

func (o *options) openLog() {
	lf, err := openLogFile(*o.logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open log file:", err)
	}
	o.logFile = lf
}

func (o *options) close() {
	if o.logFile != nil {
		_ = o.logFile.Close()
	}
}

func (o *options) logf(level int, format string, args ...any) {
	tag := "INFO"
	if level > 1 {
		tag = "DEBUG"
	}
	line := fmt.Sprintf(format, args...)
	if o.verbosity >= level {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", tag, line)
	}
	if o.logFile != nil {
		_, _ = fmt.Fprintf(o.logFile, "[%s] %s\n", tag, line)
	}
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "=== autoformat %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
	return f, nil
}

/* ---------- presets ---------- */

// loadPresets reads --config, else autoformat.yaml when present, else the built-in set.
func (o *options) loadPresets() (*config.Config, error) {
	path := *o.config
	if path == "" {
		if _, err := os.Stat(defaultPresetsFile); err != nil {
			o.logf(2, "no %s, using built-in presets", defaultPresetsFile)
			return config.Default(), nil
		}
		path = defaultPresetsFile
	}
	o.logf(1, "loading presets from %s", path)
	return config.Load(path)
}

// resolve builds the field configuration from --preset and the mask flags;
// explicit flags override the preset.
func (o *options) resolve() (config.Preset, error) {
	var p config.Preset
	if *o.preset != "" {
		c, err := o.loadPresets()
		if err != nil {
			return p, err
		}
		if p, err = config.Lookup(c, *o.preset); err != nil {
			return p, err
		}
	}
	if *o.mask != "" {
		p.InputMask = *o.mask
	}
	if *o.placeholder != "" {
		p.Placeholder = *o.placeholder
	}
	if *o.static != "" {
		p.StaticMask = *o.static
	}
	return p, nil
}

func staticTemplate(p config.Preset) string {
	if p.StaticMask == "" {
		return mask.DefaultStaticTemplate
	}
	return p.StaticMask
}

// values returns the positional arguments, or the lines of stdin when there are none.
func values(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var out []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return out, nil
}

/* ---------- commands ---------- */

func cmdFormat(args []string) error {
	o := newFlags("format")
	o.parse(args)
	o.openLog()
	defer o.close()
	p, err := o.resolve()
	if err != nil {
		return err
	}
	m := mask.NewInputMask(p.InputMask, p.PlaceholderRune())
	vals, err := values(o.fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	for _, v := range vals {
		out := m.Format(v)
		o.logf(2, "format %q with %q -> %q", v, m.Template(), out)
		fmt.Println(out)
	}
	return nil
}

func cmdUnformat(args []string) error {
	o := newFlags("unformat")
	start := o.fs.Int("start", 0, "First template position to read")
	end := o.fs.Int("end", -1, "Template position to stop at (default: template length)")
	o.parse(args)
	o.openLog()
	defer o.close()
	p, err := o.resolve()
	if err != nil {
		return err
	}
	m := mask.NewInputMask(p.InputMask, p.PlaceholderRune())
	stop := *end
	if stop < 0 {
		stop = m.Len()
	}
	vals, err := values(o.fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	for _, v := range vals {
		out := m.Unformat(v, *start, stop)
		o.logf(2, "unformat %q [%d,%d) -> %q", v, *start, stop, out)
		fmt.Println(out)
	}
	return nil
}

func cmdStatic(args []string) error {
	o := newFlags("static")
	o.parse(args)
	o.openLog()
	defer o.close()
	p, err := o.resolve()
	if err != nil {
		return err
	}
	m := mask.NewStaticMask(staticTemplate(p))
	vals, err := values(o.fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	for _, v := range vals {
		fmt.Println(m.Format(v))
	}
	return nil
}

func cmdPresets(args []string) error {
	o := newFlags("presets")
	o.parse(args)
	o.openLog()
	defer o.close()
	c, err := o.loadPresets()
	if err != nil {
		return err
	}
	noColor := util.NoColor(*o.noColor) || !isatty.IsTerminal(os.Stdout.Fd())
	fmt.Print(presets.RenderList(c, config.Names(c), -1, noColor))
	return nil
}

func cmdInit(args []string) error {
	o := newFlags("init")
	o.parse(args)
	path := *o.config
	if path == "" {
		path = defaultPresetsFile
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Println(path, "already exists; not overwriting")
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Println("Wrote", path)
	return nil
}

func cmdEdit(args []string) error {
	o := newFlags("edit")
	value := o.fs.String("value", "", "Initial raw value")
	staticView := o.fs.Bool("static-view", false, "Start in the static view")
	o.parse(args)

	interactive := len(o.fs.Args()) == 0 &&
		isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	if interactive {
		return o.editInteractive(*value, *staticView)
	}

	o.openLog()
	defer o.close()
	p, err := o.resolve()
	if err != nil {
		return err
	}
	f := field.New(field.Options{
		InputMask:     p.InputMask,
		Placeholder:   p.PlaceholderRune(),
		StaticMask:    staticTemplate(p),
		InputDisabled: p.InputDisabled,
	})
	if o.verbosity > 1 || o.logFile != nil {
		f.OnChange(func(c field.Change) {
			o.logf(2, "edit %s: raw=%q formatted=%q cursor=%d", c.Outcome, c.Raw, c.Formatted, c.Cursor)
		})
	}
	if *value != "" {
		f.SetText(*value)
	}
	scripts, err := values(o.fs.Args(), os.Stdin)
	if err != nil {
		return err
	}
	for _, s := range scripts {
		ops, err := field.ParseScript(s)
		if err != nil {
			return fmt.Errorf("script %q: %w", s, err)
		}
		field.Run(f, ops)
		o.logf(1, "raw=%q cursor=%d", f.Unformatted(), f.Cursor())
		fmt.Println(f.Display())
	}
	if *staticView || p.StaticEnabled {
		f.SetStaticFormatEnabled(true)
		fmt.Println(f.Display())
	}
	return nil
}

func (o *options) editInteractive(value string, staticView bool) error {
	// The terminal belongs to the program; logs only go to --log-file.
	log.SetOutput(io.Discard)
	if *o.logPath != "" {
		lf, err := tea.LogToFile(*o.logPath, "autoformat")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer lf.Close()
		log.Printf("=== autoformat %s started at %s ===", Version, time.Now().Format(time.RFC3339))
	}

	c, err := o.loadPresets()
	if err != nil {
		return err
	}
	c = config.Clone(c)
	noColor := util.NoColor(*o.noColor)

	name := *o.preset
	switch {
	case *o.mask != "":
		p, err := o.resolve()
		if err != nil {
			return err
		}
		name = appTUI.CustomPreset
		c.Fields[name] = p
	case name == "":
		picked, ok, err := appTUI.PickPreset(c, noColor)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		name = picked
	default:
		if _, err := config.Lookup(c, name); err != nil {
			return err
		}
	}
	log.Printf("editing preset %s", name)

	res, err := appTUI.Run(appTUI.Options{
		Presets: c,
		Preset:  name,
		Value:   value,
		Static:  staticView,
		NoColor: noColor,
		Debug:   *o.debug,
	})
	if err != nil {
		return err
	}
	if !res.Submitted {
		return nil
	}
	log.Printf("submitted preset=%s raw=%q", res.Preset, res.Raw)
	fmt.Println(res.Formatted)
	if *o.verbose || *o.debug {
		fmt.Fprintf(os.Stderr, "raw: %s\n", res.Raw)
	}
	return nil
}
