package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
)

// Form is an ordered multipart/form-data body. Parts are written in the
// order they were added; empty values are skipped so absent fields never
// reach the wire.
type Form struct {
	parts []formPart
}

type formPart struct {
	name  string
	value string
	file  string
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{}
}

// Text adds a text part when value is non-empty.
func (f *Form) Text(name, value string) *Form {
	if value != "" {
		f.parts = append(f.parts, formPart{name: name, value: value})
	}
	return f
}

// Bool adds "true" or "false" when v is set.
func (f *Form) Bool(name string, v *bool) *Form {
	if v != nil {
		f.parts = append(f.parts, formPart{name: name, value: strconv.FormatBool(*v)})
	}
	return f
}

// Int adds the decimal form of v when set.
func (f *Form) Int(name string, v *int64) *Form {
	if v != nil {
		f.parts = append(f.parts, formPart{name: name, value: strconv.FormatInt(*v, 10)})
	}
	return f
}

// File adds the contents of the file at path as a binary part.
func (f *Form) File(name, path string) *Form {
	if path != "" {
		f.parts = append(f.parts, formPart{name: name, file: path})
	}
	return f
}

// Names lists the part names in wire order.
func (f *Form) Names() []string {
	out := make([]string, 0, len(f.parts))
	for _, p := range f.parts {
		out = append(out, p.name)
	}
	return out
}

// encode renders the form fully in memory so an unreadable attachment fails
// before any byte is sent.
func (f *Form) encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range f.parts {
		if p.file == "" {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", err
			}
			continue
		}
		if err := writeFile(w, p.name, p.file); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func writeFile(w *multipart.Writer, name, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return wrapIO(path, err)
	}
	defer file.Close()

	part, err := w.CreateFormFile(name, filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return wrapIO(path, err)
	}
	return nil
}
