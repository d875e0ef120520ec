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

package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tsbootstrap/cmd/tsbootstrap/commands"
	"github.com/walteh/tsbootstrap/pkg/bootstrap"
	"github.com/walteh/tsbootstrap/pkg/config"
	"github.com/walteh/tsbootstrap/pkg/log"
	"github.com/walteh/tsbootstrap/pkg/prompt"
	"github.com/walteh/tsbootstrap/pkg/scaffold"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile     string
	sourceRoot     string
	templateName   string
	targetDir      string
	projectName    string
	projectTitle   string
	nonInteractive bool
	debug          bool
)

// newRootCmd builds the tsbootstrap command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tsbootstrap",
		Short:         "Scaffold TypeScript projects and keep them on the current template",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".tsbootstrap.yaml", "config file path")
	cmd.PersistentFlags().StringVar(&sourceRoot, "source-root", "", "directory holding templates/ and shared/")
	cmd.PersistentFlags().StringVarP(&templateName, "template", "t", "", "template name (typescript, react)")
	cmd.PersistentFlags().StringVar(&targetDir, "dir", "", "target project directory (default: current directory)")
	cmd.PersistentFlags().StringVar(&projectName, "name", "", "project name (default: target directory base name)")
	cmd.PersistentFlags().StringVar(&projectTitle, "title", "", "project title (default: project name)")
	cmd.PersistentFlags().BoolVarP(&nonInteractive, "yes", "y", false, "never prompt; fail instead of asking")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	cmd.AddCommand(commands.NewNewCmd(newRootOpts))
	cmd.AddCommand(commands.NewInitCmd(newRootOpts))
	cmd.AddCommand(commands.NewUpdateCmd(newRootOpts))
	cmd.AddCommand(commands.NewVerifyCmd(newRootOpts))
	cmd.AddCommand(commands.NewTemplatesCmd(newRootOpts))

	return cmd
}

// newRootOpts creates the shared dependencies once flags are parsed.
func newRootOpts(ctx context.Context) (*commands.RootOpts, error) {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	root, err := resolveSourceRoot(cfg)
	if err != nil {
		return nil, err
	}
	source := scaffold.Source{Root: root}

	var prompter prompt.Prompter = prompt.NewInteractive()
	if nonInteractive || cfg.NonInteractive {
		prompter = prompt.NewNonInteractive()
	}

	logger := log.New(os.Stdout, *zerolog.Ctx(ctx))

	tmpl := templateName
	if tmpl == "" {
		tmpl = cfg.DefaultTemplate
	}

	operator, err := bootstrap.New(bootstrap.Options{
		Source:   source,
		Prompter: prompter,
		Logger:   logger,
	})
	if err != nil {
		return nil, errors.Errorf("creating operator: %w", err)
	}

	return &commands.RootOpts{
		Operator:     operator,
		Logger:       logger,
		Source:       source,
		Template:     tmpl,
		TargetDir:    targetDir,
		ProjectName:  projectName,
		ProjectTitle: projectTitle,
	}, nil
}

// resolveSourceRoot picks the template source root: flag, then config,
// then the XDG data dir, then the directory next to the binary.
func resolveSourceRoot(cfg *config.Config) (string, error) {
	if sourceRoot != "" {
		return sourceRoot, nil
	}
	if cfg.SourceRoot != "" {
		return cfg.SourceRoot, nil
	}

	candidate := filepath.Join(xdg.DataHome, "tsbootstrap")
	if info, err := os.Stat(filepath.Join(candidate, "templates")); err == nil && info.IsDir() {
		return candidate, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", errors.Errorf("locating executable: %w", err)
	}
	return filepath.Dir(exe), nil
}
