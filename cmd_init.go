package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
)

const hookMarker = "# installed by git-convy"

const hookScript = `#!/bin/sh
` + hookMarker + `
# $1 is the file holding the commit message.
exec git-convy check --file "$1"
`

type initCmd struct {
	Force bool `cli:"force" help:"overwrite an existing commit-msg hook"`
}

func (c initCmd) Run(g globalCmd, args []string) error {
	g.setupLogger()

	repos, err := openRepository(".")
	if err != nil {
		return err
	}

	dir, err := hooksDir(repos)
	if err != nil {
		return err
	}

	path, err := installHook(dir, c.Force)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "installed: %v\n", path)
	return nil
}

// hooksDir honors core.hooksPath and defaults to .git/hooks.
func hooksDir(repos *git.Repository) (string, error) {
	root := repoRoot(repos)
	if root == "" {
		return "", fmt.Errorf("%w: bare repository", errNotRepository)
	}

	if p := getGitConfig(repos, "core", "hooksPath"); p != nil {
		if filepath.IsAbs(*p) {
			return *p, nil
		}
		return filepath.Join(root, *p), nil
	}
	return filepath.Join(root, git.GitDirName, "hooks"), nil
}

// installHook writes the commit-msg hook into dir.
// A hook not written by git-convy is only replaced when force is set.
func installHook(dir string, force bool) (string, error) {
	path := filepath.Join(dir, "commit-msg")

	if content, err := os.ReadFile(path); err == nil {
		if !force && !bytes.Contains(content, []byte(hookMarker)) {
			return path, fmt.Errorf("%w: %s (use --force)", errHookExists, path)
		}
		logger.Debug("replacing hook", "path", path)
	} else if !os.IsNotExist(err) {
		return path, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, err
	}
	if err := os.WriteFile(path, []byte(hookScript), 0o755); err != nil {
		return path, err
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(path, 0o755); err != nil {
		return path, err
	}

	return path, nil
}
