// Copyright 2025 Google LLC
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

package toolchain

import (
	"context"
	"regexp"

	"golang.org/x/mod/semver"
)

var llvmVersion = regexp.MustCompile(`LLVM version (\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion extracts the semantic version from the output of llc --version.
func ParseVersion(out string) (string, error) {
	m := llvmVersion.FindStringSubmatch(out)
	if m == nil {
		return "", buildErrorf("cannot find the LLVM version in %q", out)
	}
	patch := m[3]
	if patch == "" {
		patch = "0"
	}
	return "v" + m[1] + "." + m[2] + "." + patch, nil
}

// Version returns the semantic version of llc.
func (tc *Toolchain) Version(ctx context.Context) (string, error) {
	out, err := tc.run(ctx, "llc version", tc.LLC, "--version")
	if err != nil {
		return "", err
	}
	return ParseVersion(out)
}

// CheckVersion returns an error if the version of llc is older than minVersion.
// An empty minVersion accepts all versions.
func (tc *Toolchain) CheckVersion(ctx context.Context, minVersion string) error {
	if minVersion == "" {
		return nil
	}
	if !semver.IsValid(minVersion) {
		return buildErrorf("invalid minimum LLVM version %q", minVersion)
	}
	version, err := tc.Version(ctx)
	if err != nil {
		return err
	}
	return checkVersion(version, minVersion)
}

func checkVersion(version, minVersion string) error {
	if semver.Compare(version, minVersion) < 0 {
		return buildErrorf("LLVM %s is older than the minimum version %s", version, minVersion)
	}
	return nil
}
