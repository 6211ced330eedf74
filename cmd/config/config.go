/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rlite/rlite-node-config/pkg/config"
	"github.com/rlite/rlite-node-config/pkg/constants"
	v1 "github.com/rlite/rlite-node-config/pkg/types/v1"
)

// setDefaults registers the built-in defaults, so every configuration key is
// known to viper and can be overwritten by env vars
func setDefaults() {
	viper.SetDefault("script", constants.DefaultScript)
	viper.SetDefault("ctl", constants.CtlBinary)
	viper.SetDefault("debug", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("logfile", "")
}

// envFileKey turns an RLITE_SOME_KEY variable name into the some-key config key
func envFileKey(name string) (string, bool) {
	prefix := constants.EnvPrefix + "_"
	if !strings.HasPrefix(name, prefix) || name == constants.EnvFileVar {
		return "", false
	}
	key := strings.TrimPrefix(name, prefix)
	return strings.ToLower(strings.ReplaceAll(key, "_", "-")), true
}

// loadEnvFile sets the RLITE_* values of the node env file as defaults. Those
// are overwritten by the process environment and by flags.
func loadEnvFile(cfg *v1.Config) error {
	envFile := os.Getenv(constants.EnvFileVar)
	if envFile == "" {
		envFile = constants.DefaultEnvFile
	}

	if _, err := cfg.Fs.Stat(envFile); err != nil {
		cfg.Logger.Debugf("No env file found at %s", envFile)
		return nil
	}

	f, err := cfg.Fs.Open(envFile)
	if err != nil {
		return err
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return err
	}
	for name, value := range values {
		if key, ok := envFileKey(name); ok {
			viper.SetDefault(key, value)
		}
	}
	return nil
}

func setupLogger(cfg *v1.Config) {
	// Set debug level
	if cfg.Debug {
		cfg.Logger.SetLevel(v1.DebugLevel())
	}

	// Set formatter so both file and stdout format are equal
	cfg.Logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      false,
		DisableColors:    true,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	// Logfile
	if cfg.Logfile != "" {
		o, err := cfg.Fs.OpenFile(cfg.Logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.FilePerm)
		if err != nil {
			cfg.Logger.SetOutput(os.Stdout)
			cfg.Logger.Errorf("Could not open %s for logging to file: %s", cfg.Logfile, err.Error())
			return
		}

		if cfg.Quiet { // if quiet is set, only set the log to the file
			cfg.Logger.SetOutput(o)
		} else { // else set it to both stdout and the file
			cfg.Logger.SetOutput(io.MultiWriter(os.Stdout, o))
		}
		return
	}

	if cfg.Quiet { // quiet is enabled so discard all logging
		cfg.Logger.SetOutput(io.Discard)
	} else { // default to stdout
		cfg.Logger.SetOutput(os.Stdout)
	}
}

// ReadConfigRun resolves the runtime configuration. Values are taken, from
// highest to lowest priority, from flags, RLITE_* env vars, the node env file
// and the built-in defaults.
func ReadConfigRun(flags *pflag.FlagSet, opts ...config.GenericOptions) (*v1.Config, error) {
	cfg := config.NewConfig(
		append([]config.GenericOptions{config.WithLogger(v1.NewLogger())}, opts...)...,
	)

	setDefaults()

	if err := loadEnvFile(cfg); err != nil {
		cfg.Logger.Warnf("Could not load env file: %s", err.Error())
	}

	// Set the prefix for vars so we get only the ones starting with RLITE
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if flags != nil {
		_ = viper.BindPFlags(flags)
	}

	// unmarshal all the vars into the config object
	err := viper.Unmarshal(cfg)
	if err != nil {
		cfg.Logger.Warnf("error unmarshalling config: %s", err)
	}

	setupLogger(cfg)

	if v1.IsDebugLevel(cfg.Logger) {
		if out, err := yaml.Marshal(cfg); err == nil {
			cfg.Logger.Debugf("Full config loaded:\n%s", out)
		}
	}

	return cfg, cfg.Sanitize()
}
