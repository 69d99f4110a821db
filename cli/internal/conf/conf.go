// Package conf reads the apidoc configuration file for the user.
//
// The file is TOML with one table per profile:
//
//	[default]
//	token = "..."
//	api_url = "https://api.apidoc.me"
package conf

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"

	"apidoc.me/pkg/cmderr"
)

// DefaultAPIURL is used when a profile does not set api_url.
const DefaultAPIURL = "http://api.apidoc.me"

// DefaultProfile is the profile used when none is given.
const DefaultProfile = "default"

// Profile is a named set of settings from the config file.
type Profile struct {
	Name   string `koanf:"-"`
	APIURL string `koanf:"api_url"`
	Token  string `koanf:"token"`
}

var tomlParser = toml.Parser()

// DefaultPath reports the default location of the config file,
// $HOME/.apidoc/config.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".apidoc", "config")
	}
	return filepath.Join(home, ".apidoc", "config")
}

// Load reads the config file at path and returns the named profile.
func Load(path, profile string) (*Profile, error) {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, cmderr.Wrapf(err, "failed to open config at `%s`", path)
	}
	k, err := parse(data)
	if err != nil {
		return nil, cmderr.Wrapf(err, "failed to parse config at `%s`", path)
	}
	p, err := lookup(k, profile)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Str("profile", profile).Str("api_url", p.APIURL).Msg("loaded config")
	return p, nil
}

// Parse parses config file contents and returns the named profile.
func Parse(data []byte, profile string) (*Profile, error) {
	k, err := parse(data)
	if err != nil {
		return nil, cmderr.Wrapf(err, "failed to parse config")
	}
	return lookup(k, profile)
}

func parse(data []byte) (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), tomlParser); err != nil {
		return nil, err
	}
	return k, nil
}

func lookup(k *koanf.Koanf, profile string) (*Profile, error) {
	if !k.Exists(profile) {
		return nil, cmderr.Newf("no profile found for %s", profile)
	}

	p := &Profile{Name: profile}
	if err := k.UnmarshalWithConf(profile, p, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, cmderr.Wrapf(err, "invalid profile %s", profile)
	}
	if p.Token == "" {
		return nil, cmderr.Newf("profile %s: token is required", profile)
	}
	if p.APIURL == "" {
		p.APIURL = DefaultAPIURL
	}
	return p, nil
}
