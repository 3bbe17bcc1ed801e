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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nscale/reqres-api-tests/pkg/reqres"
	"github.com/nscale/reqres-api-tests/pkg/schema"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

var (
	ErrUnknownSchema = errors.New("unknown schema")
)

type options struct {
	schemaName string
	schemaFile string
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.schemaName, "schema", "users", "Built-in schema to validate against, one of: "+strings.Join(reqres.SchemaNames(), ", "))
	f.StringVar(&o.schemaFile, "schema-file", "", "YAML or JSON schema document to validate against, overrides --schema")
}

func (o *options) resolve() (*schema.Schema, error) {
	if o.schemaFile != "" {
		return schema.LoadFile(o.schemaFile)
	}

	s, ok := reqres.LookupSchema(o.schemaName)
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of: %s", ErrUnknownSchema, o.schemaName, strings.Join(reqres.SchemaNames(), ", "))
	}

	return s, nil
}

// run validates each named document, or standard input when none are given,
// stopping at the first that does not conform.
func run(ctx context.Context, o *options, paths []string, stdin io.Reader) error {
	log := log.FromContext(ctx)

	s, err := o.resolve()
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}

		return check(ctx, s, "-", data)
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}

		if err := check(ctx, s, path, data); err != nil {
			return err
		}
	}

	log.Info("all documents conform", "count", len(paths))

	return nil
}

func check(ctx context.Context, s *schema.Schema, path string, data []byte) error {
	log := log.FromContext(ctx)

	if err := schema.ValidateJSON(data, s); err != nil {
		var schemaErr *schema.SchemaError
		if errors.As(err, &schemaErr) {
			keysAndValues := []any{"document", path, "path", schemaErr.Path.String(), "reason", schemaErr.Error()}

			if errors.Is(schemaErr, schema.ErrMissingRequired) {
				keysAndValues = append(keysAndValues, "property", schemaErr.Property)
			} else {
				keysAndValues = append(keysAndValues, "expected", string(schemaErr.Expected), "actual", schemaErr.Actual.String())
			}

			log.Info("document does not conform", keysAndValues...)
		}

		return fmt.Errorf("%s: %w", path, err)
	}

	log.V(1).Info("document conforms", "document", path)

	return nil
}

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	zapOptions := zap.Options{}
	zapOptions.BindFlags(flag.CommandLine)

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	ctx := log.IntoContext(context.Background(), log.Log.WithName("reqres-schema-check"))

	if err := run(ctx, &o, pflag.Args(), os.Stdin); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
