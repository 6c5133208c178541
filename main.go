package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
	git "github.com/go-git/go-git/v5"
	"github.com/shu-go/gli"
)

var (
	errNotRepository  = errors.New("not a git repository")
	errHookExists     = errors.New("commit-msg hook already exists")
	errInvalidMessage = errors.New("invalid commit message")
	errNothingStaged  = errors.New("no changes")
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "git-convy",
	Level:  log.WarnLevel,
})

type globalCmd struct {
	All bool `cli:"all,a" help:"commit all changed files"`

	Debug bool `cli:"debug,verbose" default:"false" help:"do not commit, do output to stdout; also enables debug logs"`

	Check checkCmd `cli:"check,parse" help:"validate a commit message"`
	Init  initCmd  `cli:"init" help:"install the commit-msg hook"`
	Gen   genCmd   `cli:"generate,gen" help:"generate config file"`
	Types typesCmd `cli:"types" help:"list allowed commit types"`
}

func (c globalCmd) setupLogger() {
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}
}

// Run composes a commit message interactively, validates it and commits.
func (c globalCmd) Run() error {
	c.setupLogger()

	repos, err := openRepository(".")
	if err != nil {
		return err
	}

	wt, err := repos.Worktree()
	if err != nil {
		return err
	}
	logger.Debug("repository", "root", wt.Filesystem.Root())

	if !c.Debug && c.All {
		if err := stageAll(wt); err != nil {
			return err
		}
	}

	st, err := wt.Status()
	if err != nil {
		return err
	}
	staged := false
	for _, s := range st {
		staged = staged || (s.Staging != git.Unmodified && s.Staging != git.Untracked)
	}
	if !staged {
		fmt.Fprintln(os.Stderr, errNothingStaged)
		if !c.Debug {
			return nil
		}
	}

	cfg, path, err := readConfigFile(repos)
	if err != nil {
		return err
	}
	logger.Debug("config", "path", path)

	comp := newComposer(repos, cfg)
	raw := comp.buildupCommitMessage()

	if _, err := validate(os.Stdout, os.Stderr, raw, cfg); err != nil {
		return err
	}

	if c.Debug {
		fmt.Println("----------")
		fmt.Println(raw)
		return nil
	}

	return gitCommit(raw)
}

func stageAll(wt *git.Worktree) error {
	st, err := wt.Status()
	if err != nil {
		return err
	}
	for f, s := range st {
		switch s.Worktree {
		case git.Modified, git.Added, git.Deleted, git.Renamed, git.Copied, git.UpdatedButUnmerged:
			if _, err := wt.Add(f); err != nil {
				return fmt.Errorf("try git gc: adding %s: %w", f, err)
			}
		default:
			//nop
		}
	}
	return nil
}

func gitCommit(msg string) error {
	f, err := os.CreateTemp("", "convy-")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	_, err = f.WriteString(msg)
	f.Close()
	if err != nil {
		return err
	}

	cmd := exec.Command("git", "commit", "--cleanup=strip", "-F", f.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Version is app version
var Version string

func main() {
	app := gli.NewWith(&globalCmd{})
	app.Name = "git-convy"
	app.Desc = "A conventional commits linter"
	app.Version = Version
	app.Usage = `
# prepare
# Put git-convy to PATH.

# validate
git convy check "feat(core): add something"

# install the commit-msg hook
git convy init

# customize
git convy gen
(edit .convy.yaml)
(gitconfig: [convy] config=path/to/.convy.yaml)

# compose and commit interactively
git convy`
	app.Copyright = "(C) 2024 Shuhei Kubota"
	app.SuppressErrorOutput = true
	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, errInvalidMessage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
