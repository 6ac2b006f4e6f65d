// Package content loads the static YAML content library: classes, items and skills.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/battlecalc/internal/game/item"
	"github.com/cory-johannsen/battlecalc/internal/game/ruleset"
	"github.com/cory-johannsen/battlecalc/internal/game/skill"
)

// Subdirectories of a content root.
const (
	ClassesDir = "classes"
	ItemsDir   = "items"
	SkillsDir  = "skills"
)

// Library holds every loaded definition, indexed for lookup.
type Library struct {
	Classes *ruleset.ClassRegistry
	Items   *item.Registry
	Skills  *skill.Registry
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{
		Classes: ruleset.NewClassRegistry(),
		Items:   item.NewRegistry(),
		Skills:  skill.NewRegistry(),
	}
}

// Load reads the classes/, items/ and skills/ subdirectories of dir
// concurrently. A missing subdirectory contributes nothing.
//
// Precondition: dir must be an existing directory; logger must be non-nil.
// Postcondition: Returns a fully indexed Library, or the first load or
// registration error.
func Load(ctx context.Context, dir string, logger *zap.Logger) (*Library, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content: %s is not a directory", dir)
	}

	start := time.Now()
	var (
		classes []*ruleset.Class
		items   []*item.Item
		skills  []*skill.Skill
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		classes, err = loadOptional(gctx, filepath.Join(dir, ClassesDir), ruleset.LoadClasses)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = loadOptional(gctx, filepath.Join(dir, ItemsDir), item.LoadItems)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = loadOptional(gctx, filepath.Join(dir, SkillsDir), skill.LoadSkills)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}

	lib := NewLibrary()
	for _, c := range classes {
		if err := lib.Classes.Register(c); err != nil {
			return nil, fmt.Errorf("content: %w", err)
		}
	}
	for _, it := range items {
		if err := lib.Items.Register(it); err != nil {
			return nil, fmt.Errorf("content: %w", err)
		}
	}
	for _, s := range skills {
		if err := lib.Skills.Register(s); err != nil {
			return nil, fmt.Errorf("content: %w", err)
		}
	}

	logger.Info("content loaded",
		zap.String("dir", dir),
		zap.Int("classes", lib.Classes.Len()),
		zap.Int("items", lib.Items.Len()),
		zap.Int("weapons", len(lib.Items.Weapons())),
		zap.Int("skills", lib.Skills.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return lib, nil
}

func loadOptional[T any](ctx context.Context, dir string, load func(string) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return load(dir)
}
