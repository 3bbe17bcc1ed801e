/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package schema

import (
	"slices"
	"strconv"
	"strings"
)

// Segment is a single step into a JSON document, either an object key or
// an array index.  Schema locations use IsItems to mean every element.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
	IsItems bool
}

// Path locates a value within a JSON document.
type Path []Segment

// Key returns a new path extended with an object key.
func (p Path) Key(key string) Path {
	return append(slices.Clip(p), Segment{Key: key})
}

// Index returns a new path extended with an array index.
func (p Path) Index(index int) Path {
	return append(slices.Clip(p), Segment{Index: index, IsIndex: true})
}

// Items returns a new path extended with the array item schema, rendered
// as $.data[].
func (p Path) Items() Path {
	return append(slices.Clip(p), Segment{IsItems: true})
}

// String renders the path as $.data[3].email.
func (p Path) String() string {
	var b strings.Builder

	b.WriteString("$")

	for _, segment := range p {
		if segment.IsItems {
			b.WriteString("[]")

			continue
		}

		if segment.IsIndex {
			b.WriteString("[")
			b.WriteString(strconv.Itoa(segment.Index))
			b.WriteString("]")

			continue
		}

		b.WriteString(".")
		b.WriteString(segment.Key)
	}

	return b.String()
}
