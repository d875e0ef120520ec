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

// NewUpdateCmd creates the update command
func NewUpdateCmd(provider OptsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "update [dir]",
		Short: "Re-apply the template's managed files to an existing project",
		Long: `Update rewrites the files owned by the project's template (build and
editor configuration, shared CI and hook files) and merges template-owned
manifest fields, leaving user files and user manifest fields untouched.
The template is read from the package.json marker unless --template is
given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := provider(cmd.Context())
			if err != nil {
				return err
			}
			return o.Operator.Update(cmd.Context(), o.request(args))
		},
	}
}
