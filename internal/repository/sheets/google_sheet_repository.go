package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/shoecard/internal/config"
	"github.com/mamadbah2/shoecard/internal/domain/models"
)

// Repository defines the persistence operations supported by the Google Sheets adapter.
type Repository interface {
	ReadRange(ctx context.Context, sheetRange string) ([][]interface{}, error)
}

// GoogleSheetRepository implements the Repository interface using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// ReadRange fetches a rectangular data range from the spreadsheet.
func (r *GoogleSheetRepository) ReadRange(ctx context.Context, sheetRange string) ([][]interface{}, error) {
	if sheetRange == "" {
		return nil, fmt.Errorf("sheetRange must not be empty")
	}

	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, sheetRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", sheetRange, err)
	}

	return resp.Values, nil
}

// ShoeSource reads shoes from a sheet laid out as
// slug | name | imageSrc | price | salePrice | releaseDate | numOfColors.
// Prices are decimal dollars. A leading header row is skipped.
type ShoeSource struct {
	repo       Repository
	sheetRange string
	logger     *zap.Logger
}

// NewShoeSource wraps a sheet repository as a catalog source.
func NewShoeSource(repo Repository, sheetRange string, logger *zap.Logger) *ShoeSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShoeSource{repo: repo, sheetRange: sheetRange, logger: logger}
}

// ListShoes reads and parses the configured range.
func (s *ShoeSource) ListShoes(ctx context.Context) ([]models.Shoe, error) {
	rows, err := s.repo.ReadRange(ctx, s.sheetRange)
	if err != nil {
		return nil, fmt.Errorf("load shoes range: %w", err)
	}

	shoes := make([]models.Shoe, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		shoe, ok := s.parseRow(row)
		if !ok {
			continue
		}
		shoes = append(shoes, shoe)
	}
	return shoes, nil
}

func (s *ShoeSource) parseRow(row []interface{}) (models.Shoe, bool) {
	if len(row) < 4 {
		s.logger.Debug("skip short shoe row", zap.Int("columns", len(row)))
		return models.Shoe{}, false
	}

	slug := cell(row, 0)
	if slug == "" {
		s.logger.Debug("skip shoe row without slug")
		return models.Shoe{}, false
	}

	price, err := models.ParseMoney(cell(row, 3))
	if err != nil {
		s.logger.Debug("skip shoe row with invalid price", zap.String("slug", slug), zap.Error(err))
		return models.Shoe{}, false
	}

	shoe := models.Shoe{
		Slug:        slug,
		Name:        cell(row, 1),
		ImageSrc:    cell(row, 2),
		Price:       price,
		ReleaseDate: models.ParseReleaseDate(cell(row, 5)),
	}

	if raw := cell(row, 4); raw != "" {
		sale, err := models.ParseMoney(raw)
		if err != nil {
			s.logger.Debug("ignore invalid sale price", zap.String("slug", slug), zap.Error(err))
		} else {
			shoe.SalePrice = &sale
		}
	}

	if raw := cell(row, 6); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			shoe.NumOfColors = n
		}
	}

	return shoe, true
}

func cell(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

func isHeader(row []interface{}) bool {
	return strings.EqualFold(cell(row, 0), "slug")
}
