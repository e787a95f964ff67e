package geometry

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCube(t *testing.T) {
	b := NewCube()
	if got := b.VertexCount(); got != CubeVertexCount {
		t.Errorf("VertexCount() = %d, want %d", got, CubeVertexCount)
	}
	if got := b.TriangleCount(); got != CubeTriangleCount {
		t.Errorf("TriangleCount() = %d, want %d", got, CubeTriangleCount)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestCubeCornersAreAllSignCombinations(t *testing.T) {
	seen := make(map[[3]float32]bool)
	for _, p := range CubePositions() {
		for axis, c := range p {
			if c != 1 && c != -1 {
				t.Fatalf("corner %v axis %d = %v, want ±1", p, axis, c)
			}
		}
		seen[[3]float32(p)] = true
	}
	if len(seen) != 8 {
		t.Errorf("distinct corners = %d, want 8", len(seen))
	}
}

func TestCubeFacesPointOutward(t *testing.T) {
	b := NewCube()
	for i := 0; i < b.TriangleCount(); i++ {
		tri, _ := b.TriangleAt(i)
		n, err := b.FaceNormal(i)
		if err != nil {
			t.Fatalf("FaceNormal(%d) error: %v", i, err)
		}
		var centroid mgl32.Vec3
		for _, vi := range tri {
			p, _ := b.PositionAt(vi)
			centroid = centroid.Add(p)
		}
		centroid = centroid.Mul(1.0 / 3)
		if n.Dot(centroid) <= 0 {
			t.Errorf("triangle %d %v normal %v points inward", i, tri, n)
		}
	}
}

func TestCubeVertexNormalsPointAwayFromCenter(t *testing.T) {
	b := NewCube()
	normals := b.Normals()
	if len(normals) != CubeVertexCount {
		t.Fatalf("len(Normals()) = %d, want %d", len(normals), CubeVertexCount)
	}
	for i, n := range normals {
		p, _ := b.PositionAt(i)
		if n.Dot(p) <= 0 {
			t.Errorf("normal %d = %v, want pointing along %v", i, n, p)
		}
		if l := n.Len(); l < 0.999 || l > 1.001 {
			t.Errorf("normal %d length = %v, want 1", i, l)
		}
	}
}

func TestWritePosition(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{"first", 0, false},
		{"last", 7, false},
		{"negative", -1, true},
		{"past end", 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewCube()
			before := b.Positions()
			p := mgl32.Vec3{3, 4, 5}
			err := b.WritePosition(tt.index, p)
			if tt.wantErr {
				if !errors.Is(err, ErrIndexOutOfRange) {
					t.Fatalf("WritePosition(%d) = %v, want ErrIndexOutOfRange", tt.index, err)
				}
				after := b.Positions()
				for i := range before {
					if before[i] != after[i] {
						t.Errorf("vertex %d changed by rejected write", i)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("WritePosition(%d) = %v, want nil", tt.index, err)
			}
			if got, _ := b.PositionAt(tt.index); got != p {
				t.Errorf("PositionAt(%d) = %v, want %v", tt.index, got, p)
			}
		})
	}
}

func TestRemoveTriangleKeepsOrder(t *testing.T) {
	b := NewCube()
	removed, err := b.RemoveTriangle(1)
	if err != nil {
		t.Fatalf("RemoveTriangle(1) error: %v", err)
	}
	if removed != (Triangle{0, 2, 3}) {
		t.Errorf("removed = %v, want {0 2 3}", removed)
	}
	if got := b.TriangleCount(); got != CubeTriangleCount-1 {
		t.Errorf("TriangleCount() = %d, want %d", got, CubeTriangleCount-1)
	}
	if tri, _ := b.TriangleAt(1); tri != (Triangle{1, 5, 6}) {
		t.Errorf("TriangleAt(1) = %v, want {1 5 6}", tri)
	}
	if _, err := b.RemoveTriangle(50); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RemoveTriangle(50) = %v, want ErrIndexOutOfRange", err)
	}
}

func TestAppendTrianglesIsAllOrNothing(t *testing.T) {
	b := NewCube()
	err := b.AppendTriangles(Triangle{0, 1, 2}, Triangle{0, 1, 8})
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("AppendTriangles() = %v, want ErrIndexOutOfRange", err)
	}
	if got := b.TriangleCount(); got != CubeTriangleCount {
		t.Errorf("TriangleCount() = %d, want %d", got, CubeTriangleCount)
	}
}

func TestSetTrianglesRejectsDanglingIndex(t *testing.T) {
	b := NewCube()
	if err := b.SetTriangles([]Triangle{{0, 1, 9}}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("SetTriangles() = %v, want ErrIndexOutOfRange", err)
	}
	if got := b.TriangleCount(); got != CubeTriangleCount {
		t.Errorf("TriangleCount() = %d, want %d", got, CubeTriangleCount)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	b := NewCube()
	ps := b.Positions()
	ps[0] = mgl32.Vec3{9, 9, 9}
	ts := b.Triangles()
	ts[0] = Triangle{7, 7, 7}
	if p, _ := b.PositionAt(0); p == ps[0] {
		t.Error("Positions() aliases the buffer")
	}
	if tri, _ := b.TriangleAt(0); tri == ts[0] {
		t.Error("Triangles() aliases the buffer")
	}
}

func TestVersionAdvancesOnMutation(t *testing.T) {
	b := NewCube()
	v := b.Version()
	b.AppendPosition(mgl32.Vec3{})
	if b.Version() <= v {
		t.Errorf("Version() did not advance after AppendPosition")
	}
	v = b.Version()
	_ = b.WritePosition(100, mgl32.Vec3{})
	if b.Version() != v {
		t.Errorf("Version() advanced after rejected write")
	}
}

func TestValidateAfterShrinkingPositions(t *testing.T) {
	b := NewCube()
	b.SetPositions(CubePositions()[:4])
	if err := b.Validate(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Validate() = %v, want ErrIndexOutOfRange", err)
	}
}
