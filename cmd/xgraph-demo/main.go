// Command xgraph-demo opens a window and plots random samples with xgraph.
package main

import (
	"flag"
	"log"
	"math/rand"
	"runtime"
	"time"

	"xgraph/internal/config"
	"xgraph/internal/profiling"
	"xgraph/pkg/gpu/glgpu"
	"xgraph/pkg/xgraph"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"golang.org/x/image/colornames"
)

const (
	windowWidth  = 900
	windowHeight = 600

	frameRate = 60
)

var (
	rangeX   = flag.Float64("range-x", 20, "visible x range")
	rangeY   = flag.Float64("range-y", 10, "visible y range")
	pool     = flag.Bool("pool", true, "reuse GPU buffers across frames")
	clipBoth = flag.Bool("clip-both", false, "clip samples on y as well as x")
	dark     = flag.Bool("dark", false, "black background with white axes")
	glDebug  = flag.Bool("gl-debug", false, "log GL errors after each draw")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	sd := newShutdown(glfw.PostEmptyEvent)
	defer closer.Close()
	closer.Bind(sd.interrupt)

	if err := config.SetDefaultRange(*rangeX, *rangeY); err != nil {
		sd.fatalf("flags: %v", err)
	}
	config.SetBufferPool(*pool)
	config.SetClipBothAxes(*clipBoth)
	if *dark {
		config.SetBackground(colornames.Black)
		config.SetAxisColor(colornames.White)
	}

	if err := glfw.Init(); err != nil {
		sd.fatalf("glfw init: %v", err)
	}
	sd.onTeardown(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		sd.fatalf("create window: %v", err)
	}
	sd.onTeardown(window.Destroy)
	sd.setWindow(window)

	surface, err := glgpu.NewWindowSurface(window)
	if err != nil {
		sd.fatalf("surface: %v", err)
	}
	sd.onTeardown(surface.Release)
	surface.Adapter().CheckErrors = *glDebug

	graph, err := xgraph.New(surface, xgraph.WithOrigin(xgraph.OriginLeft|xgraph.OriginBottom))
	if err != nil {
		sd.fatalf("graph: %v", err)
	}
	sd.onTeardown(func() {
		if err := graph.Close(); err != nil {
			log.Printf("close graph: %v", err)
		}
	})

	graph.SetAutoClear(true)
	if _, err := graph.AddElement(xgraph.Element{
		Color: xgraph.ElementColor(colornames.Red),
		Data:  randomSamples(1000, *rangeY),
	}); err != nil {
		sd.fatalf("add series: %v", err)
	}
	if _, err := graph.AddElement(xgraph.Element{
		Color: xgraph.ElementColor(colornames.Steelblue),
		Data:  randomSamples(*rangeX, *rangeY),
	}); err != nil {
		sd.fatalf("add series: %v", err)
	}

	setupInput(window, graph)
	runLoop(window, graph, sd)
	sd.teardown()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "xgraph", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	return window, nil
}

// randomSamples returns x,y pairs with x stepping by 0.01 up to maxX and
// y uniformly drawn from [0, maxY).
func randomSamples(maxX, maxY float64) []float64 {
	n := int(maxX*100) + 1
	data := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		data = append(data, float64(i)*0.01, rand.Float64()*maxY)
	}
	return data
}

var origins = []xgraph.Origin{
	xgraph.OriginLeft | xgraph.OriginBottom,
	xgraph.OriginCenter,
	xgraph.OriginRight | xgraph.OriginTop,
}

func setupInput(window *glfw.Window, graph *xgraph.Graph) {
	current := 0
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyO:
			// cycle origin placement
			current = (current + 1) % len(origins)
			if err := graph.SetOrigin(origins[current]); err != nil {
				log.Printf("set origin: %v", err)
			}
		case glfw.KeyEqual:
			x, y := graph.Range()
			if err := graph.SetRange(x/2, y/2); err != nil {
				log.Printf("zoom in: %v", err)
			}
		case glfw.KeyMinus:
			x, y := graph.Range()
			if err := graph.SetRange(x*2, y*2); err != nil {
				log.Printf("zoom out: %v", err)
			}
		case glfw.KeyR:
			if graph.Len() > 0 {
				if err := graph.RemoveElement(graph.Len() - 1); err != nil {
					log.Printf("remove series: %v", err)
				}
			}
		}
	})
}

func runLoop(window *glfw.Window, graph *xgraph.Graph, sd *shutdown) {
	limiter := newFrameLimiter(frameRate)
	budget := time.Second / frameRate

	for !window.ShouldClose() && !sd.requested() {
		profiling.ResetFrame()
		start := time.Now()

		if err := graph.Render(); err != nil {
			log.Printf("render: %v", err)
			return
		}
		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		if d := time.Since(start); d > budget {
			log.Printf("Slow frame: %v (graph %v, %d renders, glfw %v). Top tasks: %s",
				d, profiling.SumWithPrefix("xgraph."), profiling.Count("xgraph.Render"),
				profiling.SumWithPrefix("glfw."), profiling.TopN(5))
		}
		limiter.Wait()
	}
}
