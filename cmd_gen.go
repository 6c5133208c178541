package main

import (
	"fmt"
	"os"
	"path/filepath"
)

type genCmd struct {
}

func (c genCmd) Run(g globalCmd, args []string) error {
	g.setupLogger()

	filename := defaultConfigFileName + ".yaml"
	if len(args) > 0 {
		filename = args[0]
	}

	filename, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "output: %v\n", filename)

	return writeConfigFile(filename, defaultConfig())
}

func writeConfigFile(filename string, c Config) error {
	content, err := encode(filename, c)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(content)
	return err
}
