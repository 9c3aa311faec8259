// Package archive rewrites jar files member by member: every .class
// entry is passed through the class-file rewriter, every other entry
// (resources, META-INF, nested jars) is copied through unchanged.
//
// The upstream tool this project descends from never implemented jar
// support (transformJarFile threw UnsupportedOperationException); this
// package fills that gap.
package archive

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/wildjak/clsmap/internal/classfile/mapping"
	"github.com/wildjak/clsmap/internal/classfile/model"
	"github.com/wildjak/clsmap/internal/classfile/rewrite"
)

const classFileExt = ".class"

// Stats summarizes one RewriteJar call.
type Stats struct {
	EntriesTotal     int
	ClassesRewritten int
	ClassesUnchanged int
}

// RewriteJar reads the jar (zip archive) rc, rewrites every .class
// member through rewrite.Transform, and writes the result to w. Every
// non-.class member is copied verbatim, preserving its original
// compression method.
func RewriteJar(w io.Writer, rc *zip.Reader, table *mapping.Table) (Stats, error) {
	var stats Stats

	zw := zip.NewWriter(w)

	for _, entry := range rc.File {
		stats.EntriesTotal++

		src, err := entry.Open()
		if err != nil {
			return stats, fmt.Errorf("archive: opening %s: %w", entry.Name, err)
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return stats, fmt.Errorf("archive: reading %s: %w", entry.Name, err)
		}

		if isClassEntry(entry.Name) {
			if len(data) > model.MaxInputSize {
				return stats, fmt.Errorf("archive: %s is %d bytes, exceeding the %d-byte class-file size ceiling", entry.Name, len(data), model.MaxInputSize)
			}

			rewritten, err := rewrite.Transform(data, table)
			if err != nil {
				return stats, fmt.Errorf("archive: rewriting %s: %w", entry.Name, err)
			}
			if len(rewritten) != len(data) || string(rewritten) != string(data) {
				stats.ClassesRewritten++
			} else {
				stats.ClassesUnchanged++
			}
			data = rewritten
		}

		if err := copyEntry(zw, entry, data); err != nil {
			return stats, err
		}
	}

	if err := zw.Close(); err != nil {
		return stats, fmt.Errorf("archive: finalizing output jar: %w", err)
	}

	return stats, nil
}

func isClassEntry(name string) bool {
	return len(name) > len(classFileExt) && name[len(name)-len(classFileExt):] == classFileExt
}

// copyEntry writes data into zw under a header cloned from entry,
// preserving its name and compression method.
func copyEntry(zw *zip.Writer, entry *zip.File, data []byte) error {
	header := entry.FileHeader
	header.CRC32 = 0
	header.UncompressedSize64 = uint64(len(data))

	dst, err := zw.CreateHeader(&header)
	if err != nil {
		return fmt.Errorf("archive: writing header for %s: %w", entry.Name, err)
	}
	if _, err := dst.Write(data); err != nil {
		return fmt.Errorf("archive: writing %s: %w", entry.Name, err)
	}
	return nil
}
