// Package config loads the key/value contract of spec.md §6.2: CLI
// flags, environment variables and an optional YAML file, merged the way
// dittofs's pkg/config merges them, with defaults applied for anything
// left unset.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Mode selects whether this process acts as a client or a full peer.
type Mode string

const (
	ModePeer   Mode = "peer"
	ModeClient Mode = "client"
)

// Config is the fully resolved configuration a zenohd process runs
// with, one field per row of spec.md §6.2's table.
type Config struct {
	// Mode selects peer or client operation. Default: peer.
	Mode Mode `mapstructure:"mode" yaml:"mode"`

	// Peer is a comma-separated list of locators to connect to.
	Peer []string `mapstructure:"peer" yaml:"peer"`

	// Listener is a comma-separated list of locators to listen on.
	Listener []string `mapstructure:"listener" yaml:"listener"`

	// User and Password authenticate to a remote peer, when set.
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`

	// MulticastScouting enables locator discovery over multicast.
	// Default: true.
	MulticastScouting bool `mapstructure:"multicast_scouting" yaml:"multicast_scouting"`

	// MulticastInterface selects the interface scouting multicasts on:
	// "auto", an IP, or an interface name. Default: "auto".
	MulticastInterface string `mapstructure:"multicast_interface" yaml:"multicast_interface"`

	// MulticastAddress is the scouting group address. Default:
	// "224.0.0.224:7447".
	MulticastAddress string `mapstructure:"multicast_address" yaml:"multicast_address"`

	// ScoutingTimeout bounds how long scouting waits for replies.
	// Default: 3s.
	ScoutingTimeout time.Duration `mapstructure:"scouting_timeout" yaml:"scouting_timeout"`

	// ScoutingDelay staggers scout requests. Default: 200ms.
	ScoutingDelay time.Duration `mapstructure:"scouting_delay" yaml:"scouting_delay"`

	// AddTimestamp stamps locally-originated messages with a Timestamp
	// extension. Default: false.
	AddTimestamp bool `mapstructure:"add_timestamp" yaml:"add_timestamp"`

	// LocalRouting allows routing between peers attached to the same
	// local instance without a round trip through a remote router.
	// Default: true.
	LocalRouting bool `mapstructure:"local_routing" yaml:"local_routing"`
}

// Default returns a Config with every spec.md §6.2 default applied.
func Default() *Config {
	return &Config{
		Mode:               ModePeer,
		MulticastScouting:  true,
		MulticastInterface: "auto",
		MulticastAddress:   "224.0.0.224:7447",
		ScoutingTimeout:    3 * time.Second,
		ScoutingDelay:      200 * time.Millisecond,
		AddTimestamp:       false,
		LocalRouting:       true,
	}
}

// RegisterFlags registers one pflag per §6.2 key onto fs, so that
// cmd/zenohd can bind the same set of names across flag, environment
// and file sources (CLI highest precedence, consistent with dittofs's
// loader).
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("mode", string(d.Mode), "operation mode: peer or client")
	fs.StringSlice("peer", nil, "comma-separated locators to connect to")
	fs.StringSlice("listener", nil, "comma-separated locators to listen on")
	fs.String("user", "", "username for peer authentication")
	fs.String("password", "", "password for peer authentication")
	fs.Bool("multicast-scouting", d.MulticastScouting, "enable multicast locator scouting")
	fs.String("multicast-interface", d.MulticastInterface, `scouting interface: "auto", an IP, or an interface name`)
	fs.String("multicast-address", d.MulticastAddress, "scouting group address (ip:port)")
	fs.Duration("scouting-timeout", d.ScoutingTimeout, "how long to wait for scouting replies")
	fs.Duration("scouting-delay", d.ScoutingDelay, "delay between staggered scout requests")
	fs.Bool("add-timestamp", d.AddTimestamp, "stamp locally-originated messages with a timestamp extension")
	fs.Bool("local-routing", d.LocalRouting, "route directly between peers on the same local instance")
}

// Load builds a Config from, in ascending precedence: defaults, an
// optional YAML file at configPath (skipped if configPath is empty or
// the file does not exist), ZENOH_-prefixed environment variables, and
// fs (typically bound to os.Args by the caller).
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("mode", string(def.Mode))
	v.SetDefault("multicast_scouting", def.MulticastScouting)
	v.SetDefault("multicast_interface", def.MulticastInterface)
	v.SetDefault("multicast_address", def.MulticastAddress)
	v.SetDefault("scouting_timeout", def.ScoutingTimeout)
	v.SetDefault("scouting_delay", def.ScoutingDelay)
	v.SetDefault("add_timestamp", def.AddTimestamp)
	v.SetDefault("local_routing", def.LocalRouting)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix("ZENOH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, fmt.Errorf("config: binding flags: %w", err)
		}
	}

	cfg := &Config{
		Mode:               Mode(v.GetString("mode")),
		Peer:               v.GetStringSlice("peer"),
		Listener:           v.GetStringSlice("listener"),
		User:               v.GetString("user"),
		Password:           v.GetString("password"),
		MulticastScouting:  v.GetBool("multicast_scouting"),
		MulticastInterface: v.GetString("multicast_interface"),
		MulticastAddress:   v.GetString("multicast_address"),
		ScoutingTimeout:    v.GetDuration("scouting_timeout"),
		ScoutingDelay:      v.GetDuration("scouting_delay"),
		AddTimestamp:       v.GetBool("add_timestamp"),
		LocalRouting:       v.GetBool("local_routing"),
	}
	if len(cfg.Peer) == 0 {
		cfg.Peer = nil
	}
	if len(cfg.Listener) == 0 {
		cfg.Listener = nil
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindFlags maps each flag's hyphenated CLI name to the underscored
// mapstructure key Load reads back, since BindPFlags alone would bind
// under the flag's own (hyphenated) name instead.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	names := map[string]string{
		"mode":                "mode",
		"peer":                "peer",
		"listener":            "listener",
		"user":                "user",
		"password":            "password",
		"multicast-scouting":  "multicast_scouting",
		"multicast-interface": "multicast_interface",
		"multicast-address":   "multicast_address",
		"scouting-timeout":    "scouting_timeout",
		"scouting-delay":      "scouting_delay",
		"add-timestamp":       "add_timestamp",
		"local-routing":       "local_routing",
	}
	for flagName, key := range names {
		f := fs.Lookup(flagName)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Validate rejects a Config that cannot be used to run a transport.
func Validate(cfg *Config) error {
	switch cfg.Mode {
	case ModePeer, ModeClient:
	default:
		return fmt.Errorf("config: invalid mode %q: want %q or %q", cfg.Mode, ModePeer, ModeClient)
	}
	if cfg.ScoutingTimeout <= 0 {
		return fmt.Errorf("config: scouting_timeout must be positive, got %s", cfg.ScoutingTimeout)
	}
	if cfg.ScoutingDelay < 0 {
		return fmt.Errorf("config: scouting_delay must not be negative, got %s", cfg.ScoutingDelay)
	}
	return nil
}
