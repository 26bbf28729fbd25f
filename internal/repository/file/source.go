package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mamadbah2/shoecard/internal/domain/models"
)

// Source reads the catalog from a YAML document.
type Source struct {
	path   string
	logger *zap.Logger
}

// NewSource builds a YAML backed catalog source.
func NewSource(path string, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{path: path, logger: logger}
}

// document is the on-disk layout. Prices are in cents; releaseDate takes any
// form models.ParseReleaseDate understands.
type document struct {
	Shoes []struct {
		Slug        string `yaml:"slug"`
		Name        string `yaml:"name"`
		ImageSrc    string `yaml:"imageSrc"`
		Price       int64  `yaml:"price"`
		SalePrice   *int64 `yaml:"salePrice"`
		ReleaseDate any    `yaml:"releaseDate"`
		NumOfColors int    `yaml:"numOfColors"`
	} `yaml:"shoes"`
}

// ListShoes parses the file on every call.
func (s *Source) ListShoes(ctx context.Context) ([]models.Shoe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", s.path, err)
	}
	return Parse(raw, s.logger)
}

// Parse decodes a YAML catalog document.
func Parse(raw []byte, logger *zap.Logger) ([]models.Shoe, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}

	shoes := make([]models.Shoe, 0, len(doc.Shoes))
	for _, entry := range doc.Shoes {
		shoe := models.Shoe{
			Slug:        entry.Slug,
			Name:        entry.Name,
			ImageSrc:    entry.ImageSrc,
			Price:       models.Money(entry.Price),
			ReleaseDate: models.ParseReleaseDate(entry.ReleaseDate),
			NumOfColors: entry.NumOfColors,
		}
		if entry.SalePrice != nil {
			shoe.SalePrice = models.Cents(*entry.SalePrice)
		}
		if shoe.ReleaseDate.IsZero() && entry.ReleaseDate != nil {
			logger.Debug("unreadable release date", zap.String("slug", entry.Slug), zap.Any("value", entry.ReleaseDate))
		}
		if shoe.NumOfColors < 0 {
			shoe.NumOfColors = 0
		}
		shoes = append(shoes, shoe)
	}
	return shoes, nil
}

// Watch calls onChange after the file is written, created or renamed into
// place. Bursts of events within the debounce interval collapse into one call.
// It blocks until ctx is cancelled.
func (s *Source) Watch(ctx context.Context, debounce time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files, so watch the directory rather than the file.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(s.path)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.logger.Debug("catalog file changed", zap.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, onChange)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				s.logger.Warn("file watcher overflow, forcing reload")
				onChange()
				continue
			}
			s.logger.Error("file watcher error", zap.Error(err))
		}
	}
}
