package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spaghettifunk/cubescene/engine/core"
	"github.com/spaghettifunk/cubescene/engine/platform"
)

type testGame struct {
	*Game
	updates int
	resizes [][2]uint32
	onFrame func(frame int) error
	closed  bool
}

func newTestGame(maxFrames uint64) *testGame {
	g := &testGame{
		Game: &Game{
			ApplicationConfig: &ApplicationConfig{
				StartWidth:  640,
				StartHeight: 480,
				Name:        "engine test",
				LogLevel:    core.ErrorLevel,
				MaxFrames:   maxFrames,
			},
		},
	}
	g.FnUpdate = func(deltaTime float64) error {
		g.updates++
		if g.onFrame != nil {
			return g.onFrame(g.updates)
		}
		return nil
	}
	g.FnOnResize = func(width, height uint32) error {
		g.resizes = append(g.resizes, [2]uint32{width, height})
		return nil
	}
	g.FnShutdown = func() error {
		g.closed = true
		return nil
	}
	return g
}

func startEngine(t *testing.T, g *testGame, p platform.Platform) *Engine {
	t.Helper()
	e, err := New(g.Game, p)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if e.Stage() != EngineStageShutdown {
			e.Shutdown()
		}
	})
	return e
}

func TestRunStopsAfterMaxFrames(t *testing.T) {
	g := newTestGame(5)
	e := startEngine(t, g, platform.NewHeadless())

	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g.updates != 5 || e.FrameCount() != 5 {
		t.Fatalf("updates %d frames %d", g.updates, e.FrameCount())
	}
	if err := e.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if !g.closed || e.Stage() != EngineStageShutdown {
		t.Fatal("game was not shut down")
	}
}

func TestEscapeQuits(t *testing.T) {
	g := newTestGame(100)
	p := platform.NewHeadless()
	p.Script = func(pump uint64) {
		if pump == 3 {
			core.InputProcessKey(core.KEY_ESCAPE, true)
		}
	}
	e := startEngine(t, g, p)

	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g.updates != 3 {
		t.Fatalf("updates %d", g.updates)
	}
}

func TestClosedPlatformQuits(t *testing.T) {
	g := newTestGame(100)
	p := platform.NewHeadless()
	g.onFrame = func(frame int) error {
		if frame == 2 {
			p.Close()
		}
		return nil
	}
	e := startEngine(t, g, p)

	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g.updates != 2 {
		t.Fatalf("updates %d", g.updates)
	}
}

func TestContextCancelStopsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := newTestGame(0)
	g.onFrame = func(frame int) error {
		if frame == 2 {
			cancel()
		}
		return nil
	}
	e := startEngine(t, g, platform.NewHeadless())

	if err := e.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if g.updates != 2 {
		t.Fatalf("updates %d", g.updates)
	}
}

func TestUpdateErrorStopsRun(t *testing.T) {
	boom := errors.New("boom")
	g := newTestGame(10)
	g.onFrame = func(frame int) error {
		if frame == 3 {
			return boom
		}
		return nil
	}
	e := startEngine(t, g, platform.NewHeadless())

	if err := e.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestResizeSuspendsAndResumes(t *testing.T) {
	resize := func(w, h uint32) {
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_RESIZED,
			Data: &core.SystemEvent{WindowWidth: w, WindowHeight: h},
		})
	}
	g := newTestGame(4)
	p := platform.NewHeadless()
	p.Script = func(pump uint64) {
		switch pump {
		case 1:
			resize(0, 0)
		case 3:
			resize(800, 600)
		}
	}
	e := startEngine(t, g, p)

	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if g.updates != 4 {
		t.Fatalf("updates %d", g.updates)
	}
	want := [][2]uint32{{640, 480}, {800, 600}}
	if len(g.resizes) != 2 || g.resizes[0] != want[0] || g.resizes[1] != want[1] {
		t.Fatalf("resizes %v", g.resizes)
	}
	if w, h := e.GetFramebufferSize(); w != 800 || h != 600 || e.IsSuspended() {
		t.Fatalf("size %dx%d suspended %v", w, h, e.IsSuspended())
	}
}

func TestResizeErrorIsLoggedVerbatim(t *testing.T) {
	var buf bytes.Buffer
	core.SetLogOutput(&buf)
	t.Cleanup(func() { core.SetLogOutput(os.Stderr) })

	g := newTestGame(1)
	g.FnOnResize = func(width, height uint32) error {
		if width == 800 {
			return errors.New("cannot scale to 100%d")
		}
		return nil
	}
	e := startEngine(t, g, platform.NewHeadless())

	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: &core.SystemEvent{WindowWidth: 800, WindowHeight: 600},
	})

	if out := buf.String(); !strings.Contains(out, "cannot scale to 100%d") {
		t.Fatalf("log output %q", out)
	}
	if w, h := e.GetFramebufferSize(); w != 800 || h != 600 {
		t.Fatalf("size %dx%d", w, h)
	}
}

func TestQueuedEventsAreProcessed(t *testing.T) {
	g := newTestGame(3)
	reloads := 0
	g.FnInitialize = func() error {
		core.EventRegister(core.EVENT_CODE_CONFIG_RELOADED, func(core.EventContext) bool {
			reloads++
			return true
		})
		return nil
	}
	p := platform.NewHeadless()
	p.Script = func(pump uint64) {
		if pump == 1 {
			core.EventQueue(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED})
		}
	}
	e := startEngine(t, g, p)

	if err := e.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if reloads != 1 {
		t.Fatalf("reloads %d", reloads)
	}
}

func TestAssetManagerIsHandedToGame(t *testing.T) {
	g := newTestGame(1)
	g.ApplicationConfig.AssetsDir = t.TempDir()
	startEngine(t, g, platform.NewHeadless())

	if g.AssetManager == nil {
		t.Fatal("game has no asset manager")
	}
}

func TestRunNeedsInitialize(t *testing.T) {
	g := newTestGame(1)
	e, err := New(g.Game, platform.NewHeadless())
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Run(context.Background()); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("got %v", err)
	}
	if _, err := New(g.Game, nil); err == nil {
		t.Fatal("expected an error without platform")
	}
}
