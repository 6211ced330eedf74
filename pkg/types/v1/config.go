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

package v1

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// Config is the runtime configuration of a script run
type Config struct {
	Logger  Logger `yaml:"-" mapstructure:"-"`
	Fs      FS     `yaml:"-" mapstructure:"-"`
	Runner  Runner `yaml:"-" mapstructure:"-"`
	Script  string `yaml:"script,omitempty" mapstructure:"script"`
	Ctl     string `yaml:"ctl,omitempty" mapstructure:"ctl"`
	Debug   bool   `yaml:"debug,omitempty" mapstructure:"debug"`
	Quiet   bool   `yaml:"quiet,omitempty" mapstructure:"quiet"`
	Logfile string `yaml:"logfile,omitempty" mapstructure:"logfile"`
}

// Sanitize checks the consistency of the configuration, all problems found
// are reported at once
func (c *Config) Sanitize() error {
	var errs *multierror.Error

	if c.Script == "" {
		errs = multierror.Append(errs, errors.New("no script file defined"))
	}
	if c.Ctl == "" {
		errs = multierror.Append(errs, errors.New("no control tool defined"))
	}
	if c.Fs == nil {
		errs = multierror.Append(errs, errors.New("no filesystem defined"))
	}
	if c.Runner == nil {
		errs = multierror.Append(errs, errors.New("no runner defined"))
	}

	return errs.ErrorOrNil()
}
