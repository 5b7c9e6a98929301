package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/cubescene/engine/core"
	"github.com/spaghettifunk/cubescene/engine/mesh"
)

var (
	ErrWatcherClosed = errors.New("asset watcher already closed")
	ErrAssetNotFound = errors.New("asset not found")
	ErrWrongType     = errors.New("asset has the wrong type")
)

type AssetType uint8

const (
	AssetTypeNone AssetType = iota
	AssetTypeSceneConfig
	AssetTypeModel
)

func (t AssetType) String() string {
	switch t {
	case AssetTypeSceneConfig:
		return "scene config"
	case AssetTypeModel:
		return "model"
	}
	return "none"
}

type AssetInfo struct {
	Path       string
	Type       AssetType
	LastLoaded time.Time
}

// AssetManager indexes the files below the assets directory and keeps the
// index current with fsnotify. Writes to a watched file queue an
// EVENT_CODE_CONFIG_RELOADED event for the main loop.
type AssetManager struct {
	assets  map[string]AssetInfo
	watched map[string]struct{}

	mutex sync.RWMutex

	done      chan struct{}
	stopped   chan struct{}
	fsnotify  *fsnotify.Watcher
	isStarted bool
	isClosed  bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		watched:  make(map[string]struct{}),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}, nil
}

func (am *AssetManager) Initialize(assetsDir string) error {
	dir, err := filepath.Abs(assetsDir)
	if err != nil {
		return err
	}
	if err := am.addRecursive(dir); err != nil {
		return err
	}

	am.mutex.Lock()
	am.isStarted = true
	am.mutex.Unlock()
	go am.start()

	core.LogInfo("asset manager watching %s (%d assets)", dir, len(am.List()))
	return nil
}

// Watch marks a file so that changes to it are reported as config reloads.
// Files outside the assets directory get their parent directory watched.
func (am *AssetManager) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	am.mutex.RLock()
	closed := am.isClosed
	am.mutex.RUnlock()
	if closed {
		return ErrWatcherClosed
	}
	if err := am.fsnotify.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	am.mutex.Lock()
	am.watched[abs] = struct{}{}
	am.mutex.Unlock()
	am.handleFileEvent(abs)
	return nil
}

// addRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	am.mutex.RLock()
	closed := am.isClosed
	am.mutex.RUnlock()
	if closed {
		return ErrWatcherClosed
	}
	return am.watchRecursive(name)
}

// Get returns the index entry of path.
func (am *AssetManager) Get(path string) (AssetInfo, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return AssetInfo{}, false
	}
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[abs]
	return info, ok
}

// List returns the indexed assets sorted by path.
func (am *AssetManager) List() []AssetInfo {
	am.mutex.RLock()
	out := make([]AssetInfo, 0, len(am.assets))
	for _, info := range am.assets {
		out = append(out, info)
	}
	am.mutex.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// LoadMeshes loads every mesh of an indexed glTF model.
func (am *AssetManager) LoadMeshes(path string) ([]*mesh.Mesh, error) {
	info, ok := am.Get(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrAssetNotFound)
	}
	if info.Type != AssetTypeModel {
		return nil, fmt.Errorf("%s is a %s: %w", path, info.Type, ErrWrongType)
	}

	meshes, err := mesh.LoadGLTF(info.Path)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	info.LastLoaded = time.Now()
	am.assets[info.Path] = info
	am.mutex.Unlock()
	return meshes, nil
}

func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	started := am.isStarted
	am.mutex.Unlock()

	if !started {
		return am.fsnotify.Close()
	}
	close(am.done)
	<-am.stopped
	return nil
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name); err != nil {
						core.LogWarn("failed to watch %s: %s", e.Name, err)
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name)
				am.notifyReload(e.Name)
			}
			// A removed path can't be stat'ed, so it is dropped from both the
			// index and the watch list whatever it was.
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
				_ = am.fsnotify.Remove(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", err)

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch list
// and indexes the files found on the way. A file created before its directory
// watch is in place is still picked up by the walk.
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) {
	assetType := determineAssetType(path)
	if assetType == AssetTypeNone {
		return
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[filepath.Clean(path)] = AssetInfo{
		Path: filepath.Clean(path),
		Type: assetType,
	}
}

func (am *AssetManager) notifyReload(path string) {
	path = filepath.Clean(path)
	am.mutex.RLock()
	_, watched := am.watched[path]
	am.mutex.RUnlock()
	if !watched {
		return
	}

	core.LogDebug("%s changed, queueing reload", path)
	if err := core.EventQueue(core.EventContext{
		Type: core.EVENT_CODE_CONFIG_RELOADED,
		Data: &core.FileEvent{Path: path},
	}); err != nil {
		core.LogWarn("dropped reload of %s: %s", path, err)
	}
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, filepath.Clean(path))
}

func determineAssetType(path string) AssetType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return AssetTypeSceneConfig
	case ".gltf", ".glb":
		return AssetTypeModel
	default:
		return AssetTypeNone
	}
}
