package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log"
	"sort"
)

type ZipService interface {
	CreateArchive(files map[string][]byte) ([]byte, error)
}

type zipService struct{}

func NewZipService() ZipService {
	return &zipService{}
}

// CreateArchive packs the named blobs into a single ZIP archive. Entries are
// written in sorted name order so the output is deterministic.
func (z *zipService) CreateArchive(files map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	log.Printf("📦 Zipping %d files...\n", len(files))

	for _, name := range names {
		entry, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrArchive, err)
		}
		if _, err := entry.Write(files[name]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrArchive, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchive, err)
	}

	return buf.Bytes(), nil
}
