package charts

import (
	"archive/zip"
	"bytes"
	"io"
	"log"

	"golang.org/x/sync/errgroup"
)

// WriteArchive renders every artifact and writes them into a zip
// archive, each entry named by its artifact name. Rendering happens
// concurrently; the zip itself is written in artifact order.
func WriteArchive(w io.Writer, artifacts []Artifact) error {
	rendered := make([][]byte, len(artifacts))

	var g errgroup.Group
	for i, a := range artifacts {
		i, a := i, a
		g.Go(func() error {
			var buf bytes.Buffer
			if err := a.WritePNG(&buf); err != nil {
				return err
			}
			rendered[i] = buf.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for i, a := range artifacts {
		f, err := zw.Create(a.Name)
		if err != nil {
			return err
		}
		if _, err := f.Write(rendered[i]); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}

	log.Printf("[Charts] archived %d chart(s)", len(artifacts))
	return nil
}
