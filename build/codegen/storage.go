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

package codegen

import (
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/types"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"
)

// storage describes how the value of a name is held.
type storage struct {
	// typ is the type of the name.
	typ types.Type
	// value is the current value of the name: a register, a constant, or a
	// symbol. It is nil when the name cannot be lowered.
	value value.Value
	// slot is the memory location of a mutable name, nil otherwise.
	slot value.Value
	// fn is set when the name is a top-level function.
	fn *ir.Func
}

// isFunc returns true if the storage is a top-level function.
func (s *storage) isFunc() bool {
	return types.Is(s.typ, types.FuncKind)
}
