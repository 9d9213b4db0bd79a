package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sable/editor"
)

func main() {
	os.Exit(run())
}

func run() int {
	debug := flag.String("debug", "", "append debug logs to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: sable [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	if *debug != "" {
		f, err := tea.LogToFile(*debug, "sable")
		if err != nil {
			fmt.Fprintln(os.Stderr, "sable:", err)
			return 1
		}
		defer f.Close()
	}

	var (
		ed  *editor.Editor
		err error
	)
	if flag.NArg() == 1 {
		ed, err = editor.Open(flag.Arg(0))
	} else {
		ed = editor.New()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "sable:", err)
		return 1
	}

	p := tea.NewProgram(editor.NewModel(ed), tea.WithAltScreen(), tea.WithMouseAllMotion())
	out, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sable:", err)
		return 1
	}

	m := out.(editor.Model)
	if err := m.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "sable:", err)
		return 1
	}
	if code, ok := m.Editor().ExitCode(); ok {
		return code
	}
	return 0
}
