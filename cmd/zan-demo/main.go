package main

import (
	"errors"
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"zan/internal/config"
	"zan/internal/core"
	"zan/internal/frame"
	"zan/internal/graphics"
	"zan/internal/imageio"
	"zan/internal/platform"
	"zan/internal/profiling"
)

func init() {
	runtime.LockOSThread()
}

const vertexSrc = `#version 410 core
layout(location = 0) in vec2 position;
uniform mat4 projection;
void main() {
	gl_Position = projection * vec4(position, 0.0, 1.0);
}`

const fragmentSrc = `#version 410 core
uniform vec3 color;
out vec4 fragColor;
void main() {
	fragColor = vec4(color, 1.0);
}`

func main() {
	configPath := flag.String("config", "", "window config (YAML)")
	flag.Parse()

	defer closer.Close()

	// Signals become a close request so teardown stays on this thread.
	// doneC is sent last, after every deferred cleanup below has run.
	exitC := make(chan struct{}, 1)
	doneC := make(chan struct{}, 1)
	defer func() { doneC <- struct{}{} }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	config.SetFPSLimit(cfg.FPSLimit)

	lib, err := platform.Init()
	if err != nil {
		closer.Fatalln(err)
	}
	defer platform.Terminate()

	win := core.NewWindow(lib, imageio.NewDecoder(), cfg.Window)
	if err := win.Init(); err != nil {
		if !errors.Is(err, core.ErrIcon) {
			platform.Terminate()
			closer.Fatalln(err)
		}
	}
	defer win.Exit()

	installKeys(win)

	program, err := graphics.NewShader(vertexSrc, fragmentSrc)
	if err != nil {
		win.Exit()
		platform.Terminate()
		closer.Fatalln(err)
	}
	defer program.Delete()

	vao, vbo := newTriangle()
	defer func() {
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteVertexArrays(1, &vao)
	}()

	closer.Bind(func() {
		exitC <- struct{}{}
		<-doneC
		log.Println("Bye!")
	})

	run(win, program, vao, exitC)
}

// installKeys binds demo controls through the native handle:
// Esc closes, F11 toggles fullscreen, V toggles vsync.
func installKeys(win *core.Window) {
	native := platform.Native(win.Handle())
	if native == nil {
		return
	}
	native.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			win.Close()
		case glfw.KeyF11:
			win.SetFullScreen(!win.IsFullScreen())
			log.Printf("Fullscreen: %t", win.IsFullScreen())
		case glfw.KeyV:
			win.SetVSync(!win.IsVSync())
			log.Printf("VSync: %t", win.IsVSync())
		}
	})
}

func newTriangle() (vao, vbo uint32) {
	vertices := []float32{
		0.0, 0.8,
		-0.7, -0.6,
		0.7, -0.6,
	}

	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, vbo
}

func run(win *core.Window, program *graphics.Shader, vao uint32, exitC <-chan struct{}) {
	gl.ClearColor(0.08, 0.09, 0.12, 1.0)

	limiter := frame.NewLimiter()
	frames := 0
	lastFPSCheck := time.Now()
	start := time.Now()

	for !win.ShouldClose() {
		select {
		case <-exitC:
			win.Close()
		default:
		}

		profiling.ResetFrame()

		func() {
			defer profiling.Track("demo.Draw")()
			gl.Viewport(0, 0, int32(win.Width()), int32(win.Height()))
			gl.Clear(gl.COLOR_BUFFER_BIT)

			t := float32(time.Since(start).Seconds())
			program.Use()
			program.SetMatrix4("projection", graphics.AspectProjection(win.Width(), win.Height()))
			program.SetVector3("color", pulse(t))
			gl.BindVertexArray(vao)
			gl.DrawArrays(gl.TRIANGLES, 0, 3)
			gl.BindVertexArray(0)
		}()

		win.Refresh()
		frames++

		// vsync already paces presentation
		if win.IsVSync() {
			limiter.Wait(0)
		} else {
			limiter.Wait(config.GetFPSLimit())
		}

		if time.Since(lastFPSCheck) >= time.Second {
			log.Printf("FPS: %d window %v [%s] framebuffer %dx%d", frames,
				profiling.SumWithPrefix("window.").Round(time.Microsecond), profiling.TopN(3), win.Width(), win.Height())
			frames = 0
			lastFPSCheck = time.Now()
		}
	}
}
