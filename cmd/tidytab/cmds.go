package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/tidytab/join"
	"github.com/katalvlaran/tidytab/render"
	"github.com/katalvlaran/tidytab/reshape"
	"github.com/katalvlaran/tidytab/setops"
	"github.com/katalvlaran/tidytab/table"
	"github.com/katalvlaran/tidytab/tableio"
)

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func rtrimEol(value string) string {
	return strings.TrimRight(value, "\r\n")
}

// Represents the state used when processing a command: parsed flags and
// the merged config profile.
type Action struct {
	cmd *cobra.Command
	cfg *Config
}

func newAction(cmd *cobra.Command) *Action {
	result := &Action{cmd: cmd}
	result.cfg = result.loadConfig()
	if result.getBool("verbose") {
		if logger, err := zap.NewDevelopment(); err == nil {
			tableio.SetLogger(logger)
		}
	}
	return result
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getInt(name string) int {
	result, _ := a.cmd.Flags().GetInt(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) getStringArray(name string) []string {
	result, _ := a.cmd.Flags().GetStringArray(name)
	return result
}

func (a *Action) loadConfig() *Config {
	cfg := DefaultConfig()
	fname := a.getString("config")
	profile := a.getString("profile")
	if err := LoadConfigFile(fname, profile, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", rtrimEol(err.Error()))
	}
	// Flags win over the profile.
	if v := a.getString("format"); v != "" {
		cfg.Format = v
	}
	if v := a.getString("delimiter"); v != "" {
		cfg.Delimiter = parseDelimiter(v)
	}
	if v := a.getString("na"); v != "" {
		cfg.NA = v
	}
	return cfg
}

// format resolves the table format for a path: the explicit setting if
// any, otherwise by file extension, defaulting to CSV.
func (a *Action) format(path string) string {
	if a.cfg.Format != "" {
		return a.cfg.Format
	}
	if strings.HasSuffix(path, ".json") {
		return "json"
	}
	return "csv"
}

func (a *Action) csvOptions() tableio.CSVOptions {
	opts := tableio.DefaultCSVOptions()
	if a.cfg.Delimiter != 0 {
		opts.Comma = a.cfg.Delimiter
	}
	if a.cfg.NA != "" {
		opts.NAStrings = []string{"", a.cfg.NA}
		opts.NAOut = a.cfg.NA
	}
	return opts
}

// read loads one table from a file path, an http(s) URL, or stdin when
// src is "-".
func (a *Action) read(src string) (*table.Table, error) {
	switch {
	case src == "-":
		return a.readStream(os.Stdin, "stdin")
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return a.readURL(src)
	default:
		return a.readFile(src)
	}
}

// readTable is read with any failure ending the process.
func (a *Action) readTable(src string) *table.Table {
	t, err := a.read(src)
	if err != nil {
		fatal("%v", err)
	}
	return t
}

func (a *Action) readFile(path string) (*table.Table, error) {
	if a.format(path) == "json" {
		return tableio.ReadJSONFile(path)
	}
	return tableio.ReadCSVFile(path, a.csvOptions())
}

func (a *Action) readStream(r io.Reader, name string) (*table.Table, error) {
	var (
		t   *table.Table
		err error
	)
	if a.format(name) == "json" {
		t, err = tableio.ReadJSON(r)
	} else {
		t, err = tableio.ReadCSV(r, a.csvOptions())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return t, nil
}

func (a *Action) readURL(url string) (*table.Table, error) {
	rsp, err := http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: %s", url, rsp.Status)
	}
	return a.readStream(rsp.Body, url)
}

// writeTable emits the result to --output, or to stdout when unset.
// Any failure ends the process.
func (a *Action) writeTable(t *table.Table) {
	out := a.getString("output")
	if out == "" || out == "-" {
		if err := a.writeStream(os.Stdout, t, "stdout"); err != nil {
			fatal("%v", err)
		}
		return
	}
	var err error
	if a.format(out) == "json" {
		err = tableio.WriteJSONFile(out, t)
	} else {
		err = tableio.WriteCSVFile(out, t, a.csvOptions())
	}
	if err != nil {
		fatal("%v", err)
	}
}

func (a *Action) writeStream(w io.Writer, t *table.Table, name string) error {
	var err error
	if a.format(name) == "json" {
		err = tableio.WriteJSON(w, t)
	} else {
		err = tableio.WriteCSV(w, t, a.csvOptions())
	}
	return errors.Wrapf(err, "write %s", name)
}

//
// Inspect
//

func show(cmd *cobra.Command, args []string) {
	// assert len(args) == 1
	action := newAction(cmd)
	t := action.readTable(args[0])
	opts := render.Options{
		MaxRows:   action.getInt("max-rows"),
		MaxWidth:  action.getInt("max-width"),
		ShowKinds: action.getBool("kinds"),
	}
	var (
		out string
		err error
	)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		out, err = render.Styled(t, opts)
	} else {
		out, err = render.Format(t, opts)
	}
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(out)
}

//
// Reshape
//

func longer(cmd *cobra.Command, args []string) {
	// assert len(args) == 1
	action := newAction(cmd)
	t := action.readTable(args[0])
	out, err := reshape.Longer(t, reshape.LongerOptions{
		IDColumns: action.getStringArray("id"),
		NamesTo:   action.getString("names-to"),
		ValuesTo:  action.getString("values-to"),
		Convert:   action.getBool("convert"),
	})
	if err != nil {
		fatal("%v", err)
	}
	action.writeTable(out)
}

func wider(cmd *cobra.Command, args []string) {
	// assert len(args) == 1
	action := newAction(cmd)
	t := action.readTable(args[0])
	out, err := reshape.Wider(t, reshape.WiderOptions{
		NamesFrom:  action.getString("names-from"),
		ValuesFrom: action.getString("values-from"),
	})
	if err != nil {
		fatal("%v", err)
	}
	action.writeTable(out)
}

func separate(cmd *cobra.Command, args []string) {
	// assert len(args) == 2
	action := newAction(cmd)
	policy, err := reshape.ParseSplitPolicy(action.getString("extra"))
	if err != nil {
		fatal("%v", err)
	}
	t := action.readTable(args[0])
	out, err := reshape.Separate(t, reshape.SeparateOptions{
		Column:    args[1],
		Into:      action.getStringArray("into"),
		Separator: action.getString("sep"),
		Policy:    policy,
		Convert:   action.getBool("convert"),
	})
	if err != nil {
		fatal("%v", err)
	}
	action.writeTable(out)
}

func unite(cmd *cobra.Command, args []string) {
	// assert len(args) >= 3
	action := newAction(cmd)
	t := action.readTable(args[0])
	out, err := reshape.Unite(t, reshape.UniteOptions{
		Columns:   args[2:],
		Into:      args[1],
		Separator: action.getString("sep"),
	})
	if err != nil {
		fatal("%v", err)
	}
	action.writeTable(out)
}

//
// Join
//

func joinTables(cmd *cobra.Command, args []string) {
	// assert len(args) == 2
	action := newAction(cmd)
	mode, err := join.ParseMode(action.getString("mode"))
	if err != nil {
		fatal("%v", err)
	}
	left := action.readTable(args[0])
	right := action.readTable(args[1])
	out, err := join.Join(left, right, join.Options{
		Mode:   mode,
		On:     action.getStringArray("on"),
		Suffix: action.getString("suffix"),
	})
	if err != nil {
		fatal("%v", err)
	}
	action.writeTable(out)
}

//
// Set operations
//

func runSetOp(cmd *cobra.Command, args []string, op func(a, b *table.Table) (*table.Table, error)) {
	// assert len(args) == 2
	action := newAction(cmd)
	a := action.readTable(args[0])
	b := action.readTable(args[1])
	out, err := op(a, b)
	if err != nil {
		fatal("%v", err)
	}
	action.writeTable(out)
}

func intersect(cmd *cobra.Command, args []string) {
	runSetOp(cmd, args, setops.Intersect)
}

func union(cmd *cobra.Command, args []string) {
	runSetOp(cmd, args, setops.Union)
}

func setdiff(cmd *cobra.Command, args []string) {
	runSetOp(cmd, args, setops.Difference)
}

func setequal(cmd *cobra.Command, args []string) {
	// assert len(args) == 2
	action := newAction(cmd)
	a := action.readTable(args[0])
	b := action.readTable(args[1])
	eq, err := setops.Equal(a, b)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(eq)
	if !eq {
		os.Exit(1)
	}
}

//
// Columns
//

func convert(cmd *cobra.Command, args []string) {
	// assert len(args) == 3
	action := newAction(cmd)
	kind, err := table.ParseKind(args[2])
	if err != nil {
		fatal("%v", err)
	}
	t := action.readTable(args[0])
	out, err := t.Convert(args[1], kind)
	if err != nil {
		fatal("%v", err)
	}
	action.writeTable(out)
}

func distinct(cmd *cobra.Command, args []string) {
	// assert len(args) == 1
	action := newAction(cmd)
	t := action.readTable(args[0])
	action.writeTable(t.Distinct())
}
