package assets

import (
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
)

func TestDefaultPackLoadsEverySprite(t *testing.T) {
	set := Load(Default(), log.New(io.Discard))

	if set.Standing == nil || set.Jumping == nil || set.Obstacle == nil || set.Background == nil {
		t.Fatalf("built-in pack should provide every sprite, got %+v", set)
	}
	if set.Standing.Height() != 3 || set.Standing.Width() != 3 {
		t.Errorf("standing sprite is %dx%d, expected 3x3", set.Standing.Width(), set.Standing.Height())
	}
}

func TestLoadMissingFilesDegrade(t *testing.T) {
	fsys := fstest.MapFS{
		FileObstacle: &fstest.MapFile{Data: []byte("##\n##\n\n")},
		FileJumping:  &fstest.MapFile{Data: []byte("\n\n")},
	}

	set := Load(fsys, log.New(io.Discard))

	if set.Standing != nil {
		t.Error("missing standing sprite should be nil")
	}
	if set.Jumping != nil {
		t.Error("blank jumping sprite should be nil")
	}
	if set.Obstacle == nil || set.Obstacle.Height() != 2 {
		t.Errorf("obstacle sprite should load with trailing blanks trimmed, got %+v", set.Obstacle)
	}
}

func TestReadSpriteErrors(t *testing.T) {
	if _, err := ReadSprite(nil, FileStanding); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("nil FS should report not exist, got %v", err)
	}

	fsys := fstest.MapFS{"blank.txt": &fstest.MapFile{Data: []byte("   \n")}}
	if _, err := ReadSprite(fsys, "blank.txt"); !errors.Is(err, ErrEmptySprite) {
		t.Errorf("blank sprite should be ErrEmptySprite, got %v", err)
	}
}

func TestSpriteAt(t *testing.T) {
	s := &Sprite{Rows: [][]rune{[]rune("ab"), []rune("c")}}

	if s.At(1, 0) != 'b' || s.At(0, 1) != 'c' {
		t.Error("At should return art runes")
	}
	if s.At(1, 1) != ' ' || s.At(-1, 0) != ' ' || s.At(0, 5) != ' ' {
		t.Error("At outside the art should be a space")
	}
	if s.Width() != 2 {
		t.Errorf("Width() = %d, expected 2", s.Width())
	}
}

func TestSourceEmptyDirUsesDefault(t *testing.T) {
	if _, err := fs.Stat(Source(""), FileStanding); err != nil {
		t.Errorf("empty dir should resolve to the built-in pack: %v", err)
	}
}
