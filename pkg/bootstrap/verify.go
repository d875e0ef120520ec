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

package bootstrap

import (
	"context"

	"github.com/walteh/tsbootstrap/pkg/integrity"
)

// 🔎 Verify re-hashes the files recorded in the project's integrity
// manifest and reports drift. It never writes; init and update decisions
// never consult the result.
func (op *operator) Verify(ctx context.Context, req Request) (*integrity.Report, error) {
	req, err := req.normalized()
	if err != nil {
		return nil, err
	}
	return integrity.Check(ctx, req.TargetDir)
}
