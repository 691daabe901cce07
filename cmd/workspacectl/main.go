// Copyright 2026 The workspace-client Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// workspacectl is a command-line client for the workspace API.
package main

import (
	"fmt"
	"os"

	"github.com/hexaworks/workspace-client/internal/config"
	"github.com/hexaworks/workspace-client/internal/logging"
)

func main() {
	logger := logging.NewLogger()
	config.LoadEnv(logger)
	// LOG_LEVEL may come from a .env file.
	logger.SetLevel(config.GetLogLevel())

	a := &app{out: os.Stdout, logger: logger}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "workspacectl:", err)
		os.Exit(1)
	}
}
