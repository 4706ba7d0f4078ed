package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/talanta/core/dashboard"
)

var (
	nowFunc        = time.Now         // mockable
	isTerminalFunc = stdoutIsTerminal // mockable

	errHelp = errors.New("help provided")
)

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

type commandLine struct {
	svc *dashboard.Service
	in  io.Reader // read when -file is "-"
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  categories                              - list the intelligence categories")
	fmt.Fprintln(cli.out, "  cards -file FILE|- [-hide-empty]        - build the dashboard of a backend payload")
	fmt.Fprintln(cli.out, "  pie -file FILE|- [-min DEGREES]         - allocate the pie chart of a backend payload")
	fmt.Fprintln(cli.out, "  filter -id all|current-year|current-month - print the backend query of a time filter")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	categoriesCmd := cli.newFlagSet("categories")

	cardsCmd := cli.newFlagSet("cards")
	cardsFile := cardsCmd.String("file", "", "The backend payload JSON file, - for stdin.")
	cardsHideEmpty := cardsCmd.Bool("hide-empty", false, "Drop the placeholder cards.")

	pieCmd := cli.newFlagSet("pie")
	pieFile := pieCmd.String("file", "", "The backend payload JSON file, - for stdin.")
	pieMin := pieCmd.Float64("min", cli.svc.MinAngle(), "The minimum sector angle, in degrees.")

	filterCmd := cli.newFlagSet("filter")
	filterID := filterCmd.String("id", dashboard.FilterAll, "The filter ID.")

	switch args[1] {
	case "categories":
		if err := parse(categoriesCmd, args[2:]); err != nil {
			return err
		}
		return cli.listCategories()
	case "cards":
		if err := parse(cardsCmd, args[2:]); err != nil {
			return err
		}
		if *cardsFile == "" {
			cardsCmd.Usage()
			return errHelp
		}
		return cli.buildCards(*cardsFile, *cardsHideEmpty)
	case "pie":
		if err := parse(pieCmd, args[2:]); err != nil {
			return err
		}
		if *pieFile == "" {
			pieCmd.Usage()
			return errHelp
		}
		if *pieMin <= 0 || *pieMin >= 360 {
			return errors.Errorf("min must be between 0 and 360 (got %v)", *pieMin)
		}
		return cli.allocatePie(*pieFile, *pieMin)
	case "filter":
		if err := parse(filterCmd, args[2:]); err != nil {
			return err
		}
		return cli.translateFilter(*filterID)
	default:
		cli.printUsage()
		return errHelp
	}
}

// readPayload decodes the backend payload from `path`, or from cli.in when `path` is "-".
func (cli *commandLine) readPayload(path string) (dashboard.Payload, error) {
	var p dashboard.Payload

	r := cli.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return p, errors.Wrap(err, "opening payload")
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&p); err != nil && err != io.EOF {
		return p, errors.Wrap(err, "decoding payload")
	}
	return p, nil
}

// write prints `v` as JSON, indented when the output is a terminal.
func (cli *commandLine) write(v interface{}) error {
	enc := json.NewEncoder(cli.out)
	if isTerminalFunc() {
		enc.SetIndent("", "  ")
	}
	return errors.Wrap(enc.Encode(v), "encoding output")
}
