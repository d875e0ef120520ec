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

// NewNewCmd creates the new command
func NewNewCmd(provider OptsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "new [dir]",
		Short: "Initialize a project, or update it if it already is one",
		Long: `New inspects the target directory and picks the right operation:
a package.json with the template marker means update, no package.json means
a fresh init, and a package.json without the marker asks for confirmation
before updating (or fails with --yes).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := provider(cmd.Context())
			if err != nil {
				return err
			}
			return o.Operator.CreateOrUpdate(cmd.Context(), o.request(args))
		},
	}
}
