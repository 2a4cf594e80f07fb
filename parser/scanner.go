package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

//*******************************************
// osm scanner
//*******************************************

// Sequential reader of osm objects, implemented by the osmpbf and osmxml scanners.
type IOSMScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

// Opens a new scanner over the same data for every pass.
type ScannerSource func(ctx context.Context) (IOSMScanner, error)

// Chooses the scanner by file extension: .pbf as protobuf, .osm and .xml as xml.
func FileSource(filename string) (ScannerSource, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pbf":
		return func(ctx context.Context) (IOSMScanner, error) {
			file, err := os.Open(filename)
			if err != nil {
				return nil, err
			}
			scanner := osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
			scanner.SkipRelations = true
			return &_FileScanner{IOSMScanner: scanner, file: file}, nil
		}, nil
	case ".osm", ".xml":
		return func(ctx context.Context) (IOSMScanner, error) {
			file, err := os.Open(filename)
			if err != nil {
				return nil, err
			}
			return &_FileScanner{IOSMScanner: osmxml.New(ctx, file), file: file}, nil
		}, nil
	default:
		return nil, fmt.Errorf("unsupported osm file type %q", ext)
	}
}

// Scans xml osm data held in memory.
func XMLSource(data []byte) ScannerSource {
	return func(ctx context.Context) (IOSMScanner, error) {
		return osmxml.New(ctx, bytes.NewReader(data)), nil
	}
}

// Closes the underlying file together with the scanner.
type _FileScanner struct {
	IOSMScanner
	file io.Closer
}

func (self *_FileScanner) Close() error {
	err := self.IOSMScanner.Close()
	if file_err := self.file.Close(); err == nil {
		err = file_err
	}
	return err
}
