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
	"github.com/walteh/tsbootstrap/pkg/managed"
)

// NewTemplatesCmd creates the templates command
func NewTemplatesCmd(provider OptsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List known templates and whether their source trees exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := provider(cmd.Context())
			if err != nil {
				return err
			}

			for _, tmpl := range managed.Templates() {
				if o.Source.HasTemplate(tmpl) {
					o.Logger.Infof("%s (%s)", tmpl, o.Source.TemplateRoot(tmpl))
				} else {
					o.Logger.Infof("%s (missing: %s)", tmpl, o.Source.TemplateRoot(tmpl))
				}
			}
			return nil
		},
	}
}
