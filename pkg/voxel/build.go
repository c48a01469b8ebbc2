package voxel

import (
	"math"
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
)

// Build sweeps the cell grid through the bounding box and returns the
// surviving cells. Horizontal slabs are sampled in parallel; each worker
// fills a private map that is merged under a lock, and Grid iteration
// orders cells by index, so output is identical for any worker count.
func Build(opts Options) *Grid {
	if opts.Placement == (mgl64.Mat4{}) {
		opts.Placement = mgl64.Ident4()
	}

	dims := [3]int{
		cellCount(opts.Size[0], opts.Cell),
		cellCount(opts.Size[1], opts.Cell),
		cellCount(opts.Size[2], opts.Cell),
	}
	g := &Grid{
		cell:  opts.Cell,
		dims:  dims,
		cells: make(map[[3]int]scene.Color),
	}
	if opts.Sample == nil {
		return g
	}

	pool := pond.NewPool(runtime.NumCPU())
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	var mu sync.Mutex

	slabH := 8
	for j0 := 0; j0 < dims[1]; j0 += slabH {
		j1 := j0 + slabH
		if j1 > dims[1] {
			j1 = dims[1]
		}
		startJ, endJ := j0, j1

		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()

			local := make(map[[3]int]scene.Color)
			for i := 0; i < dims[0]; i++ {
				nx := normalized(i, dims[0])
				for j := startJ; j < endJ; j++ {
					ny := normalized(j, dims[1])
					for k := 0; k < dims[2]; k++ {
						nz := normalized(k, dims[2])

						c, inside := opts.Sample(nx, ny, nz)
						if !inside {
							continue
						}
						if opts.Exclude != nil {
							center := g.CenterOf(i, j, k)
							world := opts.Placement.Mul4x1(center.Vec4(1)).Vec3()
							if opts.Exclude(world) {
								continue
							}
						}
						local[[3]int{i, j, k}] = c
					}
				}
			}

			mu.Lock()
			for key, c := range local {
				g.cells[key] = c
			}
			mu.Unlock()
		})
	}
	wg.Wait()

	return g
}

// cellCount resolves a box extent to a whole number of cells, never fewer
// than one.
func cellCount(size, cell float64) int {
	if cell <= 0 || size <= 0 {
		return 1
	}
	n := int(math.Round(size / cell))
	if n < 1 {
		return 1
	}
	return n
}

// normalized maps cell index i of n to the center coordinate in [-1, 1].
func normalized(i, n int) float64 {
	return (float64(i)+0.5)/float64(n)*2 - 1
}
