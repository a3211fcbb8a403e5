// Package notion wraps the Notion API client used to mirror the project-tag
// database, and the syncer that reconciles it against local tags.
package notion

import (
	"context"
	"errors"
	"strings"

	"github.com/jomei/notionapi"
)

// ErrNotConfigured is returned when the Notion credentials are missing from
// the environment; callers keep the feature disabled instead of failing boot.
var ErrNotConfigured = errors.New("notion: NOTION_API_KEY and NOTION_DATABASE_ID are not set")

// titleFieldNames is the lookup order for the property holding the tag name;
// the source database labels it in Japanese or English depending on the view.
var titleFieldNames = []string{
	"物件名", "物件", "title", "Title", "name", "Name", "プロジェクト名", "プロジェクト",
}

const maxPageSize = 1000

type Service struct {
	client     *notionapi.Client
	databaseID notionapi.DatabaseID
}

func NewService(apiKey, databaseID string) (*Service, error) {
	if apiKey == "" || databaseID == "" {
		return nil, ErrNotConfigured
	}
	return &Service{
		client:     notionapi.NewClient(notionapi.Token(apiKey)),
		databaseID: notionapi.DatabaseID(databaseID),
	}, nil
}

// Pages fetches one batch of pages from the tag database.
func (s *Service) Pages(ctx context.Context) ([]notionapi.Page, error) {
	resp, err := s.client.Database.Query(ctx, s.databaseID, &notionapi.DatabaseQueryRequest{
		PageSize: maxPageSize,
	})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// TagName extracts the tag name from a page's title property. An empty result
// means the page has no usable title and should be skipped.
func TagName(page notionapi.Page) string {
	title := findTitleProperty(page.Properties)
	if title == nil {
		return ""
	}
	return strings.TrimSpace(titleValue(title))
}

func findTitleProperty(props notionapi.Properties) *notionapi.TitleProperty {
	for _, name := range titleFieldNames {
		if tp, ok := props[name].(*notionapi.TitleProperty); ok {
			return tp
		}
	}
	// fall back to the first title-typed property
	for _, prop := range props {
		if tp, ok := prop.(*notionapi.TitleProperty); ok {
			return tp
		}
	}
	return nil
}

func titleValue(tp *notionapi.TitleProperty) string {
	if len(tp.Title) == 0 {
		return ""
	}
	first := tp.Title[0]
	if first.PlainText != "" {
		return first.PlainText
	}
	if first.Text != nil {
		return first.Text.Content
	}
	return ""
}

// TestConnection reports whether the configured database is reachable.
func (s *Service) TestConnection(ctx context.Context) bool {
	_, err := s.client.Database.Get(ctx, s.databaseID)
	return err == nil
}

// DatabaseInfo returns the raw database metadata.
func (s *Service) DatabaseInfo(ctx context.Context) (*notionapi.Database, error) {
	return s.client.Database.Get(ctx, s.databaseID)
}
