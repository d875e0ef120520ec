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
	"context"

	"github.com/walteh/tsbootstrap/pkg/bootstrap"
	"github.com/walteh/tsbootstrap/pkg/log"
	"github.com/walteh/tsbootstrap/pkg/managed"
	"github.com/walteh/tsbootstrap/pkg/scaffold"
)

// RootOpts carries the shared dependencies and flag values into
// subcommands.
type RootOpts struct {
	Operator bootstrap.Operator
	Logger   *log.Logger
	Source   scaffold.Source

	Template     string
	TargetDir    string
	ProjectName  string
	ProjectTitle string
}

// OptsProvider builds RootOpts after flags are parsed.
type OptsProvider func(ctx context.Context) (*RootOpts, error)

// request assembles the operation request, letting a positional directory
// argument override the --dir flag.
func (o *RootOpts) request(args []string) bootstrap.Request {
	dir := o.TargetDir
	if len(args) > 0 {
		dir = args[0]
	}
	return bootstrap.Request{
		Template:     managed.Template(o.Template),
		TargetDir:    dir,
		ProjectName:  o.ProjectName,
		ProjectTitle: o.ProjectTitle,
	}
}
