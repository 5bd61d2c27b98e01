package config

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const defaultsFileName = "config.ini"

// Defaults holds optional fallback values read from config.ini in the
// state directory. Zero values mean "not configured"; flags always win.
type Defaults struct {
	Interval  string
	Amplitude int
	Duration  string
	Pattern   string
}

// LoadDefaults reads config.ini from dir if present. A missing file is
// not an error and yields zero Defaults.
//
// Expected layout:
//
//	[jiggler]
//	interval  = 30s
//	amplitude = 1
//	duration  = 2h
//	pattern   = square
func LoadDefaults(dir string) (Defaults, error) {
	path := filepath.Join(dir, defaultsFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Defaults{}, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return Defaults{}, err
	}

	section := file.Section("jiggler")
	return Defaults{
		Interval:  section.Key("interval").String(),
		Amplitude: section.Key("amplitude").MustInt(0),
		Duration:  section.Key("duration").String(),
		Pattern:   section.Key("pattern").String(),
	}, nil
}
