package runif

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// A Selection tells which classes and methods to consider.
type Selection struct {
	Classes  []string
	Methods  []string
	Tags     []string
	MatchAll bool
	Manifest string
}

// NewSelection builds a Selection from viper.
func NewSelection() Selection {
	return Selection{
		Classes:  viper.GetStringSlice("class"),
		Methods:  viper.GetStringSlice("method"),
		Tags:     viper.GetStringSlice("tag"),
		MatchAll: viper.GetBool("match-all"),
		Manifest: viper.GetString("manifest"),
	}
}

// A Config holds the run parameters read from flags and environment.
type Config struct {
	Selection

	Limit         time.Duration
	Timeout       time.Duration
	Verbose       bool
	StopOnFailure bool
	MetricsAddr   string
}

// NewConfig builds a Config from viper.
func NewConfig() (Config, error) {

	cfg := Config{
		Selection:     NewSelection(),
		Limit:         viper.GetDuration("limit"),
		Timeout:       viper.GetDuration("timeout"),
		Verbose:       viper.GetBool("verbose"),
		StopOnFailure: viper.GetBool("stop-on-failure"),
		MetricsAddr:   viper.GetString("metrics-addr"),
	}

	if cfg.Limit <= 0 {
		return cfg, fmt.Errorf("invalid limit '%s': must be positive", cfg.Limit)
	}

	if cfg.Timeout < 0 {
		return cfg, fmt.Errorf("invalid timeout '%s': must not be negative", cfg.Timeout)
	}

	return cfg, nil
}

// ExtendArgs adds the selection flags to the given command.
func ExtendArgs(c *cobra.Command) {

	c.Flags().StringSliceP("class", "C", nil, "Only consider the given classes")
	c.Flags().StringSliceP("method", "m", nil, "Only consider the given methods")
	c.Flags().StringSliceP("tag", "t", nil, "Only consider methods with the given tags")
	c.Flags().BoolP("match-all", "M", false, "Match all tags specified")
	c.Flags().String("manifest", "", "Path to a manifest declaring gates and preconditions")
}
