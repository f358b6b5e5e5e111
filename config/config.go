package config

import (
	"encoding/json"
	"os"
	"os/user"
	"path"

	"github.com/boreq/ircline/irc/protocol"
	"github.com/pkg/errors"
)

// The name of the environment variable which specifies the location of the
// config directory.
const ConfigEnvVar = "IRCLINEPATH"

// Names of the parser policies used in the config file.
const (
	BareNamesByDot    = "dot"
	BareNamesAsNick   = "nick"
	BareNamesAsServer = "server"

	SpacesCollapse  = "collapse"
	SpacesKeepEmpty = "keep"
)

// This part of the config structure is saved in the config file in JSON format.
type savedConfig struct {
	// BareNames decides how prefixes without '!' and '@' are read.
	BareNames string

	// Spaces decides how runs of spaces between parameters are read.
	Spaces string

	// MaxParams limits the number of parameters, 0 disables the limit.
	MaxParams int

	// Format is the default output format of the parse command.
	Format string

	// Color enables coloured output of the text format.
	Color bool
}

// Full config struct.
type Config struct {
	savedConfig
}

// Load reads the config file, a missing file leaves the config unchanged.
func (conf *Config) Load(filePath string) error {
	content, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "could not read the config file")
	}
	if err := json.Unmarshal(content, &conf.savedConfig); err != nil {
		return errors.Wrap(err, "could not decode the config file")
	}
	return nil
}

func (conf *Config) Save(filePath string) error {
	jsonEncoded, err := json.MarshalIndent(conf.savedConfig, "", "	")
	if err != nil {
		return err
	}
	err = os.WriteFile(filePath, jsonEncoded, 0600)
	return err
}

// ParserOptions converts the config to the options of protocol.Parser.
func (conf *Config) ParserOptions() (protocol.Options, error) {
	var opts protocol.Options

	switch conf.BareNames {
	case BareNamesByDot, "":
		opts.BareNames = protocol.BareNameByDot
	case BareNamesAsNick:
		opts.BareNames = protocol.BareNameAsNick
	case BareNamesAsServer:
		opts.BareNames = protocol.BareNameAsServer
	default:
		return opts, errors.Errorf("unknown bare name policy %q", conf.BareNames)
	}

	switch conf.Spaces {
	case SpacesCollapse, "":
		opts.Spaces = protocol.SpacesCollapse
	case SpacesKeepEmpty:
		opts.Spaces = protocol.SpacesKeepEmpty
	default:
		return opts, errors.Errorf("unknown space policy %q", conf.Spaces)
	}

	if conf.MaxParams < 0 {
		return opts, errors.Errorf("negative parameter limit %d", conf.MaxParams)
	}
	opts.MaxParams = conf.MaxParams
	return opts, nil
}

// Returns already loaded ready-to-use config.
func Get(filePath string) (*Config, error) {
	conf := Default()
	if err := conf.Load(filePath); err != nil {
		return nil, errors.Wrap(err, "unable to load config")
	}
	return conf, nil
}

// Returns the directory in which config should be saved.
func GetDirPath() string {
	// Overriden by env variable
	if envDir := os.Getenv(ConfigEnvVar); envDir != "" {
		return envDir
	}

	// Default directory in $HOME
	user, err := user.Current()
	if err != nil {
		return ".ircline"
	}
	return path.Join(user.HomeDir, ".ircline")
}

// Returns the path to the config file.
func GetConfigPath() string {
	return path.Join(GetDirPath(), "config.json")
}

// Returns a config filled with default values.
func Default() *Config {
	conf := &Config{
		savedConfig{
			BareNames: BareNamesByDot,
			Spaces:    SpacesCollapse,
			MaxParams: 0,
			Format:    "text",
			Color:     true,
		},
	}
	return conf
}
