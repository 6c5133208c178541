package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shu-go/git-convy/commit"
)

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	validStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type checkCmd struct {
	File string `cli:"file,f" help:"read the message from a file, dropping # comment lines"`
}

func (c checkCmd) Run(g globalCmd, args []string) error {
	g.setupLogger()

	raw, err := c.message(args, os.Stdin)
	if err != nil {
		return err
	}

	repos, err := openRepository(".")
	if err != nil {
		logger.Debug("no repository, config from the current directory", "err", err)
	}
	cfg, path, err := readConfigFile(repos)
	if err != nil {
		return err
	}
	logger.Debug("config", "path", path)

	_, err = validate(os.Stdout, os.Stderr, raw, cfg)
	return err
}

// message takes the commit message from --file, the arguments or stdin, in that order.
func (c checkCmd) message(args []string, stdin io.Reader) (string, error) {
	if c.File != "" {
		content, err := readFile(c.File)
		if err != nil {
			return "", err
		}
		return stripComments(string(content)), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// scissorsLine starts the diff appended by "git commit -v".
const scissorsLine = "# ------------------------ >8 ------------------------"

// stripComments drops the lines git marks as comments in a commit message file,
// and everything from the scissors line on.
func stripComments(content string) string {
	lines := strings.SplitAfter(content, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if strings.TrimRight(l, "\r\n") == scissorsLine {
			break
		}
		if strings.HasPrefix(l, "#") {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "")
}

// validate runs the commit grammar on raw and reports the outcome.
// A rejected message is reported on stderr and returned as errInvalidMessage.
func validate(stdout, stderr io.Writer, raw string, cfg *Config) (*commit.Message, error) {
	msg, err := commit.ValidateMessage(raw, cfg.commitConfig())

	var perr *commit.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintf(stderr, "%s %v\n", errorStyle.Render("Error:"), perr)
		if line := excerpt(raw, perr.Position); line != "" {
			fmt.Fprintln(stderr, faintStyle.Render(line))
		}
		return nil, fmt.Errorf("%w: %v", errInvalidMessage, perr)
	}
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(stdout, validStyle.Render("Commit message is valid!"))
	return msg, nil
}

// excerpt returns the line containing pos followed by a caret under pos.
func excerpt(raw string, pos int) string {
	if pos > len(raw) {
		pos = len(raw)
	}
	start := strings.LastIndexByte(raw[:pos], '\n') + 1
	end := strings.IndexByte(raw[pos:], '\n')
	if end < 0 {
		end = len(raw)
	} else {
		end += pos
	}

	line := raw[start:end]
	if strings.TrimSpace(line) == "" {
		return ""
	}
	return line + "\n" + strings.Repeat(" ", pos-start) + "^"
}
