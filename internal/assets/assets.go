// Package assets loads the runner's sprites. Every sprite is optional: a file
// that is missing or empty is logged and the renderer draws a solid rectangle
// in its place.
package assets

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed sprites/*.txt
var embedded embed.FS

// Sprite file names inside an asset directory.
const (
	FileStanding   = "king_still.txt"
	FileJumping    = "king_jump.txt"
	FileObstacle   = "obstacle.txt"
	FileBackground = "background.txt"
)

// ErrEmptySprite is returned for a sprite file with no visible rows.
var ErrEmptySprite = errors.New("sprite is empty")

// Sprite is text art; spaces are transparent.
type Sprite struct {
	Rows [][]rune
}

// Width returns the widest row length.
func (s *Sprite) Width() int {
	w := 0
	for _, r := range s.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Height returns the number of rows.
func (s *Sprite) Height() int {
	return len(s.Rows)
}

// At returns the rune at (x, y), or a space outside the art.
func (s *Sprite) At(x, y int) rune {
	if y < 0 || y >= len(s.Rows) || x < 0 || x >= len(s.Rows[y]) {
		return ' '
	}
	return s.Rows[y][x]
}

// Set holds the game's sprites. Nil fields mean "use a placeholder".
type Set struct {
	Standing   *Sprite
	Jumping    *Sprite
	Obstacle   *Sprite
	Background *Sprite
}

// Default returns the built-in sprite pack.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded sprites missing: %v", err))
	}
	return sub
}

// Source resolves the asset file system: the built-in pack when dir is empty,
// otherwise the directory on disk.
func Source(dir string) fs.FS {
	if dir == "" {
		return Default()
	}
	return os.DirFS(dir)
}

// Load reads every sprite from fsys. Failures are logged at warn level and
// leave the corresponding field nil.
func Load(fsys fs.FS, logger *log.Logger) Set {
	load := func(name string) *Sprite {
		s, err := ReadSprite(fsys, name)
		if err != nil {
			logger.Warn("sprite unavailable, using placeholder", "file", name, "error", err)
			return nil
		}
		return s
	}

	return Set{
		Standing:   load(FileStanding),
		Jumping:    load(FileJumping),
		Obstacle:   load(FileObstacle),
		Background: load(FileBackground),
	}
}

// ReadSprite parses one text-art file. Trailing blank lines are dropped.
func ReadSprite(fsys fs.FS, name string) (*Sprite, error) {
	if fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]rune
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rows = append(rows, []rune(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	for len(rows) > 0 && strings.TrimSpace(string(rows[len(rows)-1])) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptySprite)
	}
	return &Sprite{Rows: rows}, nil
}
