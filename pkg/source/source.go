// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package source acquires the raw help-listing text consumed by the
// generator. Keeping acquisition behind the Source interface leaves the
// transform and render stages pure.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Source provides the raw help-listing text.
type Source interface {
	Text(ctx context.Context) (string, error)
}

// FromReader returns a Source that reads the full listing from r.
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

type readerSource struct {
	r io.Reader
}

func (s *readerSource) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(s.r)
	if err != nil {
		return "", fmt.Errorf("failed to read help listing: %w", err)
	}
	return string(data), nil
}

// FromFile returns a Source that reads the listing from the given file.
func FromFile(path string) Source {
	return &fileSource{path: path}
}

type fileSource struct {
	path string
}

func (s *fileSource) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read help listing %s: %w", s.path, err)
	}
	return string(data), nil
}
