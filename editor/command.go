package editor

import (
	"fmt"
	"strconv"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
)

// execCommand interprets one composed command line. Every parse or
// validation failure is recovered into a status message; only an I/O failure
// from write/write-quit propagates as a fatal error.
func (e *Editor) execCommand(input string) error {
	words, err := shellwords.Parse(input)
	if err != nil {
		e.setError("Invalid command")
		return nil
	}
	if len(words) == 0 {
		return nil
	}

	verb, args := words[0], words[1:]
	switch verb {
	case "echo":
		isErr := false
		if len(args) > 0 && args[0] == "--error" {
			isErr = true
			args = args[1:]
		}
		text := strings.Join(args, " ")
		if isErr {
			e.setError(text)
		} else {
			e.setStatus(text)
		}

	case "write", "w":
		if len(args) > 0 {
			e.setError("write takes no arguments")
			return nil
		}
		return e.Save()

	case "quit", "q":
		code, err := parseExitCode(args)
		if err != nil {
			e.setError(err.Error())
			return nil
		}
		if e.modified {
			e.setError("Unsaved changes")
			return nil
		}
		e.exit(code)

	case "quit!", "q!":
		code, err := parseExitCode(args)
		if err != nil {
			e.setError(err.Error())
			return nil
		}
		e.exit(code)

	case "write-quit", "wq":
		code, err := parseExitCode(args)
		if err != nil {
			e.setError(err.Error())
			return nil
		}
		if err := e.Save(); err != nil {
			return err
		}
		e.exit(code)

	default:
		e.setError("unknown command: " + verb)
	}
	return nil
}

// parseExitCode parses the optional exit code of the quit family. Codes are
// small literal integers in [0, 255]; absence means 0.
func parseExitCode(args []string) (int, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
		code, err := strconv.Atoi(args[0])
		if err != nil || code < 0 || code > 255 {
			return 0, fmt.Errorf("invalid exit code %q", args[0])
		}
		return code, nil
	default:
		return 0, fmt.Errorf("too many arguments")
	}
}
