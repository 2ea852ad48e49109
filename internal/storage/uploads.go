// Package storage is the resume blob store: opaque writes in, reference
// paths out.
package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/Wizz677/applysmart/internal/apperr"
)

type Uploads struct {
	Dir string
}

func NewUploads(dir string) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Uploads{Dir: dir}, nil
}

// StoreResume validates that the upload is a single PDF and writes it under
// a fresh name, returning the public reference. The type check sniffs file
// content; the client-supplied filename and declared MIME type are not
// trusted.
func (u *Uploads) StoreResume(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", apperr.Internal("opening upload", err)
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", apperr.Internal("sniffing upload type", err)
	}
	if !mt.Is("application/pdf") {
		return "", apperr.Validation("Only PDF files are allowed")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", apperr.Internal("rewinding upload", err)
	}

	name := uuid.NewString() + ".pdf"
	dst, err := os.Create(filepath.Join(u.Dir, name))
	if err != nil {
		return "", apperr.Internal("creating upload file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, f); err != nil {
		return "", apperr.Internal("writing upload file", err)
	}
	return "/uploads/" + name, nil
}
