package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/shu-go/findcfg"
	"github.com/shu-go/orderedmap"
	"gopkg.in/yaml.v3"
)

const (
	userConfigFolder = "git-convy"

	defaultConfigFileName = ".convy"
	defaultScopesFileName = ".scope-history"

	configSection      = "convy"
	configConfig       = "config"
	configScopeHistory = "scopes"
)

func defaultConfig() Config {
	require := true
	return Config{
		AdditionalTypes:             []string{},
		RequireBreakingChangeFooter: &require,
		TypeDescriptions:            defaultCommitTypes(),
	}
}

// defaultCommitTypes describes the built-in vocabulary.
func defaultCommitTypes() *orderedmap.OrderedMap[string, CommitType] {
	ct := orderedmap.New[string, CommitType]()
	ct.Set("feat", CommitType{Desc: "A new feature", Emoji: ":sparkles:"})
	ct.Set("fix", CommitType{Desc: "A bug fix", Emoji: ":bug:"})
	ct.Set("docs", CommitType{Desc: "Documentation only changes", Emoji: ":memo:"})
	ct.Set("style", CommitType{Desc: "Changes that do not affect the meaning of the code", Emoji: ":art:"})
	ct.Set("refactor", CommitType{Desc: "A code change that neither fixes a bug nor adds a feature", Emoji: ":recycle:"})
	ct.Set("perf", CommitType{Desc: "A code change that improves performance", Emoji: ":zap:"})
	ct.Set("test", CommitType{Desc: "Adding missing tests or correcting existing tests", Emoji: ":test_tube:"})
	ct.Set("build", CommitType{Desc: "Changes that affect the build system or external dependencies", Emoji: ":package:"})
	ct.Set("ci", CommitType{Desc: "Changes to our CI configuration files and scripts", Emoji: ":hammer:"})
	ct.Set("chore", CommitType{Desc: "Other changes that don't modify src or test files", Emoji: ":wrench:"})
	return ct
}

func repoRoot(repos *git.Repository) string {
	if repos == nil {
		return ""
	}
	if wt, err := repos.Worktree(); err == nil {
		return wt.Filesystem.Root()
	}
	return ""
}

func openRepository(dir string) (*git.Repository, error) {
	repos, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errNotRepository, err)
	}
	return repos, nil
}

// findConfigPath locates name (.yaml, .yml or .json). When nothing is found it returns
// the path where a new file is expected.
func findConfigPath(repos *git.Repository, name, gitKey string) (path string, found bool) {
	rootDir := repoRoot(repos)

	var exactPath string
	if rootDir != "" {
		if p := getGitConfig(repos, configSection, gitKey); p != nil {
			exactPath = filepath.Join(rootDir, *p)
		}
	} else {
		rootDir, _ = os.Getwd()
	}

	finder := findcfg.New(
		findcfg.Name(name),
		findcfg.ExactPath(exactPath),
		findcfg.YAML(),
		findcfg.JSON(),
		findcfg.Dir(rootDir),
		findcfg.UserConfigDir(userConfigFolder),
		findcfg.ExecutableDir(),
	)
	if f := finder.Find(); f != nil {
		return f.Path, true
	}
	return finder.FallbackPath(), false
}

// readConfigFile returns the found configuration, or the defaults and the path a new one would go to.
func readConfigFile(repos *git.Repository) (*Config, string, error) {
	path, found := findConfigPath(repos, defaultConfigFileName, configConfig)
	if !found {
		c := defaultConfig()
		return &c, path, nil
	}

	c, err := tryReadConfigFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read %s: %w", path, err)
	}
	return c, path, nil
}

func tryReadConfigFile(filename string) (*Config, error) {
	content, err := readFile(filename)
	if err != nil {
		return nil, err
	}

	c := Config{
		TypeDescriptions: orderedmap.New[string, CommitType](),
	}
	if err := decode(filename, content, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func readScopesFile(repos *git.Repository) (scopes Scopes, fileName string) {
	path, found := findConfigPath(repos, defaultScopesFileName, configScopeHistory)
	if !found {
		return nil, path
	}

	content, err := readFile(path)
	if err != nil {
		return nil, path
	}
	sc := make(Scopes)
	if err := decode(path, content, &sc); err != nil {
		logger.Warn("broken scope history", "path", path, "err", err)
		return nil, path
	}
	return sc, path
}

func readFile(filename string) ([]byte, error) {
	if s, err := os.Stat(filename); err != nil {
		return nil, err
	} else if s.IsDir() {
		return nil, fmt.Errorf("%s is a directory", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// decode picks the codec by extension, and tries YAML then JSON otherwise.
func decode(filename string, content []byte, v any) error {
	if in(filepath.Ext(filename), ".yaml", ".yml") {
		return yaml.Unmarshal(content, v)
	}
	if in(filepath.Ext(filename), ".json") {
		return json.Unmarshal(content, v)
	}
	if err := yaml.Unmarshal(content, v); err != nil {
		if jerr := json.Unmarshal(content, v); jerr != nil {
			return err
		}
	}
	return nil
}

func encode(filename string, v any) ([]byte, error) {
	if in(filepath.Ext(filename), ".json") {
		return json.MarshalIndent(v, "", "  ")
	}
	return yaml.Marshal(v)
}

func getGitConfig(repos *git.Repository, section, key string) *string {
	if repos == nil {
		return nil
	}
	config, err := repos.Config()
	if err != nil {
		return nil
	}

	for _, s := range config.Raw.Sections {
		if !strings.EqualFold(s.Name, section) {
			continue
		}
		if v := s.Options.Get(key); v != "" {
			return &v
		}
	}
	return nil
}

func in(s string, choices ...string) bool {
	for _, c := range choices {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}
