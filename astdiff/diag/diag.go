//  Copyright (c) 2023 Uber Technologies, Inc.
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

// Package diag provides the opt-in debug sink shared by the tree
// builder, matcher and patch extractor. The core is pure and
// synchronous (see spec §5); logging here is purely informational and
// defaults to a no-op so library callers pay nothing unless they ask
// for it.
package diag

import "go.uber.org/zap"

// L is the package-wide debug sink. Replace it with SetLogger before
// calling into astdiff to see node counts, per-pair match scores and
// patch counts; the default is silent.
var L = zap.NewNop().Sugar()

// SetLogger installs logger as the debug sink for the whole module. A
// nil logger restores the default no-op sink.
func SetLogger(logger *zap.SugaredLogger) {
	if logger == nil {
		L = zap.NewNop().Sugar()
		return
	}
	L = logger
}
