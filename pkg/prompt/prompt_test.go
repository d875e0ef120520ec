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

package prompt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tsbootstrap/pkg/prompt"
)

func TestNonInteractiveAsk(t *testing.T) {
	_, err := prompt.NewNonInteractive().Ask(context.Background(), "pick a template", "typescript")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive input disabled")
	assert.Contains(t, err.Error(), "pick a template")
}

func TestNonInteractiveConfirm(t *testing.T) {
	ok, err := prompt.NewNonInteractive().Confirm(context.Background(), "adopt this project?")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "interactive input disabled")
}

func TestImplementations(t *testing.T) {
	var _ prompt.Prompter = prompt.NewInteractive()
	var _ prompt.Prompter = prompt.NewNonInteractive()
}
