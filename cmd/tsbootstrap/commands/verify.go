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
	"gitlab.com/tozd/go/errors"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd(provider OptsProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check managed files against the recorded integrity manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := provider(cmd.Context())
			if err != nil {
				return err
			}

			report, err := o.Operator.Verify(cmd.Context(), o.request(args))
			if err != nil {
				return err
			}

			for _, rel := range report.Drifted {
				o.Logger.Infof("drifted: %s", rel)
			}
			for _, rel := range report.Missing {
				o.Logger.Infof("missing: %s", rel)
			}

			if !report.Clean() {
				return errors.Errorf("%d drifted, %d missing of %d managed files",
					len(report.Drifted), len(report.Missing),
					len(report.Unchanged)+len(report.Drifted)+len(report.Missing))
			}

			o.Logger.Successf("%d managed files match", len(report.Unchanged))
			return nil
		},
	}
}
