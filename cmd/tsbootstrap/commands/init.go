// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command
func NewInitCmd(provider OptsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Materialize a template into a directory",
		Long: `Init writes every file of the chosen template plus the shared
resources into the target directory, substituting the project name and
title, and records an integrity manifest of everything it owns.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := provider(cmd.Context())
			if err != nil {
				return err
			}
			return o.Operator.Init(cmd.Context(), o.request(args))
		},
	}
}
