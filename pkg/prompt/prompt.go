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

// Package prompt models interactive input as a small capability interface.
// Operations that may need a decision from the user take a Prompter
// explicitly; passing NonInteractive makes every prompt a hard error, which
// is how "skip prompts" mode is enforced.
package prompt

import (
	"context"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// 💬 Prompter supplies answers to questions the caller did not pre-answer.
type Prompter interface {
	// Ask returns free-text input, with def offered as the default answer.
	Ask(ctx context.Context, question string, def string) (string, error)
	// Confirm returns a yes/no decision.
	Confirm(ctx context.Context, question string) (bool, error)
}

// 🖥️ Interactive prompts on the terminal via pterm.
type Interactive struct{}

func NewInteractive() Interactive {
	return Interactive{}
}

func (Interactive) Ask(ctx context.Context, question string, def string) (string, error) {
	input := pterm.DefaultInteractiveTextInput
	if def != "" {
		input = *input.WithDefaultValue(def)
	}
	answer, err := input.Show(question)
	if err != nil {
		return "", errors.Errorf("reading answer: %w", err)
	}
	return answer, nil
}

func (Interactive) Confirm(ctx context.Context, question string) (bool, error) {
	ok, err := pterm.DefaultInteractiveConfirm.Show(question)
	if err != nil {
		return false, errors.Errorf("reading confirmation: %w", err)
	}
	return ok, nil
}

// 🚫 NonInteractive fails on any prompt. Ambiguous situations that would
// normally ask the user become fatal errors instead.
type NonInteractive struct{}

func NewNonInteractive() NonInteractive {
	return NonInteractive{}
}

func (NonInteractive) Ask(ctx context.Context, question string, def string) (string, error) {
	return "", errors.Errorf("interactive input disabled, cannot ask: %s", question)
}

func (NonInteractive) Confirm(ctx context.Context, question string) (bool, error) {
	return false, errors.Errorf("interactive input disabled, cannot confirm: %s", question)
}
