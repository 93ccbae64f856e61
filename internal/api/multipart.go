// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// multipartForm accumulates text fields and at most a handful of file
// parts for the endpoints that accept image uploads.
type multipartForm struct {
	fields []fieldPair
	files  []filePair
}

type fieldPair struct {
	name  string
	value string
}

type filePair struct {
	name string
	path string
}

func newMultipartForm() *multipartForm {
	return &multipartForm{}
}

// Field adds a text part. Empty values are skipped so the server keeps
// its current value for optional fields.
func (f *multipartForm) Field(name, value string) *multipartForm {
	if value != "" {
		f.fields = append(f.fields, fieldPair{name: name, value: value})
	}
	return f
}

// File adds a file part read from the local filesystem at encode time.
func (f *multipartForm) File(name, path string) *multipartForm {
	if path != "" {
		f.files = append(f.files, filePair{name: name, path: path})
	}
	return f
}

// encode writes the form into a buffer and returns the body and its
// Content-Type including the boundary.
func (f *multipartForm) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range f.fields {
		if err := w.WriteField(p.name, p.value); err != nil {
			return nil, "", err
		}
	}
	for _, p := range f.files {
		src, err := os.Open(p.path)
		if err != nil {
			return nil, "", fmt.Errorf("open %s: %w", p.path, err)
		}
		part, err := w.CreateFormFile(p.name, filepath.Base(p.path))
		if err != nil {
			src.Close()
			return nil, "", err
		}
		if _, err := io.Copy(part, src); err != nil {
			src.Close()
			return nil, "", err
		}
		src.Close()
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
