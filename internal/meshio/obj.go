// Package meshio reads stroke point files and writes ribbon segments to
// interchange formats.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/ribbon-studio/pkg/ribbon"
)

// WriteOBJ writes segments as one Wavefront OBJ object with a group per
// segment. Disposed and empty segments are skipped.
func WriteOBJ(w io.Writer, name string, segments []*ribbon.Segment) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# ribbon-studio\n")
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	base := 1 // OBJ indices are 1-based and global to the file.
	for _, seg := range segments {
		if seg == nil || seg.Disposed() || seg.VertexCount() == 0 {
			continue
		}
		fmt.Fprintf(bw, "g segment_%d\n", seg.Index)
		for _, v := range seg.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
		}
		for _, v := range seg.Vertices {
			fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
		}
		for _, v := range seg.Vertices {
			fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
		}
		for i := 0; i+2 < len(seg.Indices); i += 3 {
			a := base + int(seg.Indices[i])
			b := base + int(seg.Indices[i+1])
			c := base + int(seg.Indices[i+2])
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
		base += seg.VertexCount()
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing obj: %w", err)
	}
	return nil
}

// WriteOBJFile writes segments to path.
func WriteOBJFile(path, name string, segments []*ribbon.Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteOBJ(f, name, segments); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
