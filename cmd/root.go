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

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rlite/rlite-node-config/cmd/config"
	"github.com/rlite/rlite-node-config/pkg/action"
	"github.com/rlite/rlite-node-config/pkg/constants"
	nodeError "github.com/rlite/rlite-node-config/pkg/error"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rlite-node-config",
		Short:         "Simple configuration tool for rlite",
		Long:          "Runs each line of an init script as an rlite-ctl command. Enrollments (ipcp-enroll) run after all other commands.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfigRun(cmd.Flags())
			if err != nil {
				cfg.Logger.Errorf("Invalid configuration: %s", err)
				return nodeError.NewFromError(err, nodeError.InvalidConfig)
			}

			return action.RunScript(cfg)
		},
	}
	cmd.Flags().StringP("script", "s", constants.DefaultScript, "Path of the script file to be run")
	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// Execute runs the root command and exits with the code carried by the error.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		switch t := err.(type) {
		case *nodeError.NodeConfigError:
			os.Exit(t.ExitCode())
		default:
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
	}
}
