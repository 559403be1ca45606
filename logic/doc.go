//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package logic implements the symbolic layer of proofed: tokens and token
// sequences, the operator spelling table that normalizes them, and
// propositional formulas with their rendering and parsing.
//
// A token sequence is what the editor stores for each column of a proof
// line. Users type operators one character at a time, so a sequence may
// briefly hold an operator spelled out as literal characters; Simplify
// collapses those spellings into canonical operator tokens.
package logic
