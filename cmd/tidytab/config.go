package main

import (
	"os"
	"os/user"
	"path"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

const DefaultConfigFile = "~/.tidytab/config"
const DefaultConfigProfile = "default"

// Config holds the IO preferences a profile can set. Flags override any
// of them; built-in defaults apply last. The delimiter needs quoting in
// the file because ';' opens an ini comment:
//
//	[default]
//	format = csv
//	delimiter = ";"
//	na = NA
type Config struct {
	Format    string
	Delimiter rune
	NA        string
}

func DefaultConfig() *Config {
	return &Config{}
}

// Expand the given file path if it starts with a ~/
func expandUser(fname string) (string, error) {
	if strings.HasPrefix(fname, "~/") {
		usr, err := user.Current()
		if err != nil {
			return "", err
		}
		return path.Join(usr.HomeDir, fname[2:]), nil
	}
	return fname, nil
}

// Load the named stanza from the source.
// Source can be either filename or config string
func loadStanza(source interface{}, profile string) (*ini.Section, error) {
	info, err := ini.Load(source)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading config")
	}
	if !info.HasSection(profile) {
		return nil, errors.Errorf("config profile '%s' not found", profile)
	}
	return info.Section(profile), nil
}

func parseConfigStanza(stanza *ini.Section, cfg *Config) {
	if v := stanza.Key("format").String(); v != "" {
		cfg.Format = v
	}
	if v := stanza.Key("delimiter").String(); v != "" {
		cfg.Delimiter = parseDelimiter(v)
	}
	if v := stanza.Key("na").String(); v != "" {
		cfg.NA = v
	}
}

// LoadConfigString merges the given profile of the provided config text
// into cfg.
func LoadConfigString(source, profile string, cfg *Config) error {
	stanza, err := loadStanza([]byte(source), profile)
	if err != nil {
		return err
	}
	parseConfigStanza(stanza, cfg)
	return nil
}

// LoadConfigFile merges the given profile of the config file into cfg.
// A missing file is fine — every setting has a flag or a default — but a
// file that exists must parse and carry the profile.
func LoadConfigFile(fname, profile string, cfg *Config) error {
	fname, err := expandUser(fname)
	if err != nil {
		return err
	}
	if _, err := os.Stat(fname); err != nil {
		return nil
	}
	stanza, err := loadStanza(fname, profile)
	if err != nil {
		return err
	}
	parseConfigStanza(stanza, cfg)
	return nil
}

// parseDelimiter reads a delimiter spelling: "\t" (two characters) means
// a tab, anything else contributes its first rune.
func parseDelimiter(s string) rune {
	if s == `\t` {
		return '\t'
	}
	for _, r := range s {
		return r
	}
	return 0
}
