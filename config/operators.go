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
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/timburks/proofed/logic"
)

// ReadOperators reads an operator table spec from a YAML file.
// Families missing from the file keep their default spelling.
func ReadOperators(path string) (logic.TableSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return logic.TableSpec{}, fmt.Errorf("read operators: %w", err)
	}
	return ParseOperators(data)
}

// ParseOperators decodes an operator table spec and validates it.
func ParseOperators(data []byte) (logic.TableSpec, error) {
	spec := logic.DefaultSpec()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil && err != io.EOF {
		return logic.TableSpec{}, fmt.Errorf("parse operators: %w", err)
	}
	if _, err := logic.NewTable(spec); err != nil {
		return logic.TableSpec{}, err
	}
	return spec, nil
}

// WriteOperators writes spec as YAML.
func WriteOperators(w io.Writer, spec logic.TableSpec) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(spec); err != nil {
		return fmt.Errorf("write operators: %w", err)
	}
	return encoder.Close()
}
