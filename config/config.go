// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in .rfdim.yaml, environment variables with an RFDIM prefix,
// and command line arguments
type Config struct {
	// Chains restricts annotation to these chain identifiers.
	// Empty means every chain of the structure
	Chains []string `mapstructure:"chains"`

	// Out is the default filename suggested when saving settings
	Out string `mapstructure:"out"`

	// Verbose enables debug logging
	Verbose bool `mapstructure:"verbose"`
}

// Setup initializes viper: an explicit config file when given, otherwise
// .rfdim.yaml in the working directory or home directory. Environment
// variables override the file, flags override both.
func Setup(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".rfdim")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("RFDIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// the config file is optional when searched for, required when named
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("reading config file: %v", err)
		}
	}
}

// New returns a new Config struct populated by Viper settings
func New() Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	for i, chain := range c.Chains {
		c.Chains[i] = strings.ToUpper(strings.TrimSpace(chain))
	}
	return c
}

// AllowsChain reports whether a chain identifier passes the whitelist.
// An empty whitelist allows every chain.
func (c Config) AllowsChain(id string) bool {
	if len(c.Chains) == 0 {
		return true
	}
	id = strings.ToUpper(strings.TrimSpace(id))
	for _, chain := range c.Chains {
		if chain == id {
			return true
		}
	}
	return false
}
