// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"sync"

	"github.com/ik5/audman"
	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/params"
)

// Cache maps a group path to its loaded Group. Entries are never evicted.
type Cache struct {
	fsys   fs.FS
	player audio.Player
	dir    string
	logger *slog.Logger

	mtx    sync.RWMutex
	groups map[string]*Group
	loads  int
}

func NewCache(fsys fs.FS, player audio.Player, dir string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		fsys:   fsys,
		player: player,
		dir:    dir,
		logger: logger,
		groups: make(map[string]*Group),
	}
}

// Resolve returns the group at groupPath, loading it on first use.
// definedBy names the config file that referenced the group, or Hardcoded.
//
// When wantsLoop is set a group with clips but no loopTime fails with a
// *ConfigError. The group stays cached either way.
func (c *Cache) Resolve(groupPath, definedBy string, wantsLoop bool) (*Group, error) {
	g, err := c.get(groupPath, definedBy)
	if err != nil {
		return nil, err
	}

	if wantsLoop {
		if err := g.checkLoop(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (c *Cache) get(groupPath, definedBy string) (*Group, error) {
	c.mtx.RLock()
	g, ok := c.groups[groupPath]
	c.mtx.RUnlock()
	if ok {
		return g, nil
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if g, ok := c.groups[groupPath]; ok {
		return g, nil
	}

	g, err := c.load(groupPath, definedBy)
	if err != nil {
		return nil, err
	}
	c.groups[groupPath] = g
	c.loads++

	return g, nil
}

func (c *Cache) load(groupPath, definedBy string) (*Group, error) {
	dir := path.Join(c.dir, groupPath)

	p, err := params.Load(c.fsys, path.Join(dir, ParamsFile), c.logger)
	if err != nil {
		return nil, fmt.Errorf("sound group %s: %w", groupPath, err)
	}

	entries, err := fs.ReadDir(c.fsys, dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("sound group %s: %w", groupPath, err)
	}

	var clips []audio.Clip
	for _, e := range entries {
		name := path.Join(dir, e.Name())
		if !slices.Contains(audman.SupportedExtensions, audio.Ext(e.Name())) || !c.isClipFile(name, e) {
			continue
		}

		clip, err := c.loadClip(name)
		if err != nil {
			return nil, fmt.Errorf("sound group %s: %w", groupPath, err)
		}
		clips = append(clips, clip)
	}

	if len(clips) == 0 {
		attrs := []any{slog.String("dir", dir)}
		if definedBy != Hardcoded {
			attrs = append(attrs, slog.String("defined_by", definedBy))
		}
		c.logger.Warn("found no sounds", attrs...)
	}

	return &Group{
		path:      groupPath,
		definedBy: definedBy,
		dir:       dir,
		loopTime:  max(p.LoopTime, 0),
		volume:    max(p.Volume, 0),
		clips:     clips,
	}, nil
}

// isClipFile reports whether e is a regular file or a symlink to one.
func (c *Cache) isClipFile(name string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := fs.Stat(c.fsys, name)
	if err != nil {
		c.logger.Warn("skipping broken link", slog.String("file", name), slog.Any("error", err))
		return false
	}
	return info.Mode().IsRegular()
}

func (c *Cache) loadClip(name string) (audio.Clip, error) {
	f, err := c.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrClipLoad, err)
	}
	defer f.Close()

	clip, err := c.player.LoadClip(name, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrClipLoad, err)
	}

	c.logger.Debug("loaded clip", slog.String("clip", name))
	return clip, nil
}

// Loads returns how many groups have been read from storage.
func (c *Cache) Loads() int {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return c.loads
}

// Len returns the number of cached groups.
func (c *Cache) Len() int {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return len(c.groups)
}
